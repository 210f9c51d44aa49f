package routes

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/arzan03/PawPal/internal/models"
	"github.com/arzan03/PawPal/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memUsers mirrors services.UserService over a map.
type memUsers struct {
	mu    sync.Mutex
	users []models.User
}

func (m *memUsers) Register(_ context.Context, profile bson.M) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email, _ := profile["email"].(string)
	if email == "" {
		return models.InsertResult{}, services.ErrMissingEmail
	}
	for _, u := range m.users {
		if u.Email == email {
			return models.InsertResult{}, services.ErrUserExists
		}
	}
	u := models.User{ID: primitive.NewObjectID(), Email: email}
	m.users = append(m.users, u)
	return models.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (m *memUsers) List(context.Context) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []bson.M{}
	for _, u := range m.users {
		out = append(out, bson.M{"_id": u.ID, "email": u.Email, "role": u.Role})
	}
	return out, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) PromoteToAdmin(_ context.Context, id primitive.ObjectID) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			modified := int64(0)
			if m.users[i].Role != models.RoleAdmin {
				modified = 1
			}
			m.users[i].Role = models.RoleAdmin
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func (m *memUsers) add(email, role string) models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := models.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	m.users = append(m.users, u)
	return u
}

type memCategories []models.Category

func (m memCategories) List(context.Context) ([]models.Category, error) {
	return m, nil
}

type memPets struct {
	mu   sync.Mutex
	pets map[primitive.ObjectID]models.Pet
}

func newMemPets() *memPets {
	return &memPets{pets: map[primitive.ObjectID]models.Pet{}}
}

func (m *memPets) List(_ context.Context, f services.PetFilter) ([]models.Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Pet{}
	for _, p := range m.pets {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memPets) ListByOwner(_ context.Context, email string) ([]models.Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Pet{}
	for _, p := range m.pets {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPets) Get(_ context.Context, id primitive.ObjectID) (*models.Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pets[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memPets) Create(_ context.Context, pet models.Pet) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pet.ID = primitive.NewObjectID()
	pet.Adopted = false
	m.pets[pet.ID] = pet
	return models.InsertResult{Acknowledged: true, InsertedID: pet.ID}, nil
}

func (m *memPets) Delete(_ context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pets[id]; !ok {
		return models.DeleteResult{Acknowledged: true}, nil
	}
	delete(m.pets, id)
	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *memPets) SetAdopted(_ context.Context, id primitive.ObjectID, adopted bool) (models.UpdateResult, error) {
	return m.modify(id, func(p *models.Pet) { p.Adopted = adopted })
}

func (m *memPets) Update(_ context.Context, id primitive.ObjectID, u models.PetUpdate) (models.UpdateResult, error) {
	return m.modify(id, func(p *models.Pet) {
		p.Name = u.Name
		p.Age = u.Age
		p.Category = u.Category
		p.Location = u.Location
		p.ShortDescription = u.ShortDescription
		p.LongDescription = u.LongDescription
		p.Image = u.Image
	})
}

func (m *memPets) modify(id primitive.ObjectID, fn func(*models.Pet)) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pets[id]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	fn(&p)
	m.pets[id] = p
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type memDonations struct {
	mu        sync.Mutex
	campaigns map[primitive.ObjectID]models.Donation
}

func newMemDonations() *memDonations {
	return &memDonations{campaigns: map[primitive.ObjectID]models.Donation{}}
}

func (m *memDonations) List(context.Context) ([]models.Donation, error) {
	return m.ListByOwner(context.Background(), "")
}

func (m *memDonations) ListByOwner(_ context.Context, email string) ([]models.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Donation{}
	for _, d := range m.campaigns {
		if email == "" || d.Email == email {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDonations) Get(_ context.Context, id primitive.ObjectID) (*models.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memDonations) Create(_ context.Context, d models.Donation) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d.ID = primitive.NewObjectID()
	if d.Status == "" {
		d.Status = models.DonationActive
	}
	m.campaigns[d.ID] = d
	return models.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (m *memDonations) SetStatus(_ context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	return m.modify(id, func(d *models.Donation) { d.Status = status })
}

func (m *memDonations) Update(_ context.Context, id primitive.ObjectID, u models.DonationUpdate) (models.UpdateResult, error) {
	return m.modify(id, func(d *models.Donation) {
		d.Name = u.Name
		d.MaxAmount = u.MaxAmount
		d.LastDate = u.LastDate
		d.ShortDescription = u.ShortDescription
		d.LongDescription = u.LongDescription
		d.Image = u.Image
	})
}

func (m *memDonations) modify(id primitive.ObjectID, fn func(*models.Donation)) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.campaigns[id]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	fn(&d)
	m.campaigns[id] = d
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type memImages struct {
	names []string
	data  []string
}

func (m *memImages) Put(_ context.Context, filename, _ string, r io.Reader, _ int64) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.names = append(m.names, filename)
	m.data = append(m.data, string(b))
	return "http://images.local/pawpal-images/" + filename, nil
}
