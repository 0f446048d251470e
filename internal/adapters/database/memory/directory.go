package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/oris_formation_app/internal/core/ports/repositories"
)

type ClientRepository struct {
	store *Store
}

var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

func (r *ClientRepository) SaveClient(_ context.Context, client domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.clients[client.ClientID]; exists {
		return duplicate("client %s", client.ClientID)
	}
	r.store.clients[client.ClientID] = client
	return nil
}

func (r *ClientRepository) FindClientByID(_ context.Context, clientID string) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	client, ok := r.store.clients[clientID]
	if !ok {
		return nil, notFound("client %s", clientID)
	}
	return &client, nil
}

func (r *ClientRepository) ListClients(_ context.Context) ([]domain.Client, error) {
	r.store.mu.RLock()
	clients := make([]domain.Client, 0, len(r.store.clients))
	for _, c := range r.store.clients {
		clients = append(clients, c)
	}
	r.store.mu.RUnlock()

	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Name != clients[j].Name {
			return clients[i].Name < clients[j].Name
		}
		return clients[i].ClientID < clients[j].ClientID
	})
	return clients, nil
}

func (r *ClientRepository) UpdateClient(_ context.Context, client domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.clients[client.ClientID]
	if !ok {
		return notFound("client %s", client.ClientID)
	}
	client.CreatedAt = existing.CreatedAt
	r.store.clients[client.ClientID] = client
	return nil
}

func (r *ClientRepository) DeleteClient(_ context.Context, clientID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.clients[clientID]; !ok {
		return notFound("client %s", clientID)
	}
	delete(r.store.clients, clientID)
	return nil
}

type TrainingRepository struct {
	store *Store
}

var _ portsrepo.TrainingRepositoryFacade = (*TrainingRepository)(nil)

func (r *TrainingRepository) SaveTraining(_ context.Context, training domain.TrainingModule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.trainings[training.TrainingID]; exists {
		return duplicate("training %s", training.TrainingID)
	}
	r.store.trainings[training.TrainingID] = training
	return nil
}

func (r *TrainingRepository) FindTrainingByID(_ context.Context, trainingID string) (*domain.TrainingModule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	training, ok := r.store.trainings[trainingID]
	if !ok {
		return nil, notFound("training %s", trainingID)
	}
	return &training, nil
}

func (r *TrainingRepository) FindTrainingByTitle(ctx context.Context, title string) (*domain.TrainingModule, error) {
	trainings, _ := r.ListTrainings(ctx)
	for i := range trainings {
		if trainings[i].Title == title {
			return &trainings[i], nil
		}
	}
	return nil, notFound("training titled %q", title)
}

func (r *TrainingRepository) ListTrainings(_ context.Context) ([]domain.TrainingModule, error) {
	r.store.mu.RLock()
	trainings := make([]domain.TrainingModule, 0, len(r.store.trainings))
	for _, t := range r.store.trainings {
		trainings = append(trainings, t)
	}
	r.store.mu.RUnlock()

	sort.Slice(trainings, func(i, j int) bool {
		if trainings[i].Reference != trainings[j].Reference {
			return trainings[i].Reference < trainings[j].Reference
		}
		return trainings[i].TrainingID < trainings[j].TrainingID
	})
	return trainings, nil
}

func (r *TrainingRepository) UpdateTraining(_ context.Context, training domain.TrainingModule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.trainings[training.TrainingID]
	if !ok {
		return notFound("training %s", training.TrainingID)
	}
	training.CreatedAt = existing.CreatedAt
	r.store.trainings[training.TrainingID] = training
	return nil
}

func (r *TrainingRepository) DeleteTraining(_ context.Context, trainingID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.trainings[trainingID]; !ok {
		return notFound("training %s", trainingID)
	}
	delete(r.store.trainings, trainingID)
	return nil
}

type CertificationRepository struct {
	store *Store
}

var _ portsrepo.CertificationRepositoryFacade = (*CertificationRepository)(nil)

func (r *CertificationRepository) SaveCertification(_ context.Context, cert domain.Certification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.certifications[cert.CertificationID]; exists {
		return duplicate("certification %s", cert.CertificationID)
	}
	r.store.certifications[cert.CertificationID] = cert
	return nil
}

func (r *CertificationRepository) ListCertifications(_ context.Context) ([]domain.Certification, error) {
	r.store.mu.RLock()
	certs := make([]domain.Certification, 0, len(r.store.certifications))
	for _, c := range r.store.certifications {
		certs = append(certs, c)
	}
	r.store.mu.RUnlock()

	sort.Slice(certs, func(i, j int) bool {
		if !certs[i].ExpiryDate.Equal(certs[j].ExpiryDate) {
			return certs[i].ExpiryDate.Before(certs[j].ExpiryDate)
		}
		return certs[i].CertificationID < certs[j].CertificationID
	})
	return certs, nil
}

func (r *CertificationRepository) DeleteCertification(_ context.Context, certificationID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.certifications[certificationID]; !ok {
		return notFound("certification %s", certificationID)
	}
	delete(r.store.certifications, certificationID)
	return nil
}
