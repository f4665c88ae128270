package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
	"github.com/spec-kit/itsm-backoffice/internal/repository"
)

// fakeTicketRepo is an in-memory TicketRepository for service tests.
type fakeTicketRepo struct {
	tickets map[string]*domain.Ticket
	// listErr and updateErr force store failures.
	listErr   error
	updateErr error
}

func newFakeTicketRepo(tickets ...*domain.Ticket) *fakeTicketRepo {
	repo := &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
	for _, t := range tickets {
		clone := *t
		repo.tickets[t.ID] = &clone
	}
	return repo
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *ticket
	return &clone, nil
}

func (r *fakeTicketRepo) List(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Ticket
	for _, ticket := range r.tickets {
		if filter.CompanyID != nil && ticket.CompanyID != *filter.CompanyID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, ticket.Status) {
			continue
		}
		if filter.AssignedToOrUnassigned != nil {
			if ticket.AssignedTo != nil && *ticket.AssignedTo != *filter.AssignedToOrUnassigned {
				continue
			}
		}
		out = append(out, *ticket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.tickets[ticket.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tickets[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeTicketRepo) Count(ctx context.Context, companyID *string, statuses []domain.TicketStatus) (int64, error) {
	tickets, err := r.List(ctx, repository.TicketFilter{CompanyID: companyID, Statuses: statuses})
	if err != nil {
		return 0, err
	}
	return int64(len(tickets)), nil
}

func (r *fakeTicketRepo) Recent(ctx context.Context, companyID *string, limit int64) ([]domain.Ticket, error) {
	tickets, err := r.List(ctx, repository.TicketFilter{CompanyID: companyID})
	if err != nil {
		return nil, err
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].CreatedAt.After(tickets[j].CreatedAt) })
	if int64(len(tickets)) > limit {
		tickets = tickets[:limit]
	}
	return tickets, nil
}

func containsStatus(statuses []domain.TicketStatus, status domain.TicketStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// fakeNoteRepo is an in-memory TicketNoteRepository.
type fakeNoteRepo struct {
	notes []domain.TicketNote
}

func (r *fakeNoteRepo) Create(_ context.Context, note *domain.TicketNote) error {
	r.notes = append(r.notes, *note)
	return nil
}

func (r *fakeNoteRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.TicketNote, error) {
	var out []domain.TicketNote
	for _, note := range r.notes {
		if note.TicketID == ticketID {
			out = append(out, note)
		}
	}
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		repo.users[u.ID] = &clone
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.users, id)
	return nil
}

// fakeAssetRepo is an in-memory AssetRepository.
type fakeAssetRepo struct {
	assets map[string]*domain.Asset
}

func newFakeAssetRepo(assets ...*domain.Asset) *fakeAssetRepo {
	repo := &fakeAssetRepo{assets: make(map[string]*domain.Asset)}
	for _, a := range assets {
		clone := *a
		repo.assets[a.ID] = &clone
	}
	return repo
}

func (r *fakeAssetRepo) Create(_ context.Context, asset *domain.Asset) error {
	clone := *asset
	r.assets[asset.ID] = &clone
	return nil
}

func (r *fakeAssetRepo) GetByID(_ context.Context, id string) (*domain.Asset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *asset
	return &clone, nil
}

func (r *fakeAssetRepo) List(_ context.Context, filter repository.AssetFilter) ([]domain.Asset, error) {
	var out []domain.Asset
	for _, asset := range r.assets {
		if filter.CompanyID != nil && asset.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Status != nil && asset.Status != *filter.Status {
			continue
		}
		out = append(out, *asset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAssetRepo) Update(_ context.Context, asset *domain.Asset) error {
	if _, ok := r.assets[asset.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	clone := *asset
	r.assets[asset.ID] = &clone
	return nil
}

func (r *fakeAssetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.assets[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.assets, id)
	return nil
}

func (r *fakeAssetRepo) Count(ctx context.Context, companyID *string, status *domain.AssetStatus) (int64, error) {
	assets, err := r.List(ctx, repository.AssetFilter{CompanyID: companyID, Status: status})
	if err != nil {
		return 0, err
	}
	return int64(len(assets)), nil
}

// fakeCompanyRepo is an in-memory CompanyRepository.
type fakeCompanyRepo struct {
	companies map[string]*domain.Company
}

func newFakeCompanyRepo(companies ...*domain.Company) *fakeCompanyRepo {
	repo := &fakeCompanyRepo{companies: make(map[string]*domain.Company)}
	for _, c := range companies {
		clone := *c
		repo.companies[c.ID] = &clone
	}
	return repo
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *company
	return &clone, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, onlyID *string) ([]domain.Company, error) {
	var out []domain.Company
	for _, company := range r.companies {
		if onlyID != nil && company.ID != *onlyID {
			continue
		}
		out = append(out, *company)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	clone := *company
	r.companies[company.ID] = &clone
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.companies[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.companies)), nil
}

// fakeSystemConfigRepo is an in-memory SystemConfigRepository.
type fakeSystemConfigRepo struct {
	stored *domain.SystemConfig
}

func (r *fakeSystemConfigRepo) Get(_ context.Context) (*domain.SystemConfig, error) {
	if r.stored == nil {
		return nil, mongo.ErrNoDocuments
	}
	clone := *r.stored
	return &clone, nil
}

func (r *fakeSystemConfigRepo) Upsert(_ context.Context, cfg *domain.SystemConfig) error {
	clone := *cfg
	r.stored = &clone
	return nil
}

// fakeContractRepo is an in-memory ContractRepository.
type fakeContractRepo struct {
	contracts []domain.Contract
	listErr   error
}

func (r *fakeContractRepo) Create(_ context.Context, contract *domain.Contract) error {
	r.contracts = append(r.contracts, *contract)
	return nil
}

func (r *fakeContractRepo) List(_ context.Context, companyID *string) ([]domain.Contract, error) {
	var out []domain.Contract
	for _, c := range r.contracts {
		if companyID != nil && c.CompanyID != *companyID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeContractRepo) ListActiveByCompany(_ context.Context, companyID string) ([]domain.Contract, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Contract
	for _, c := range r.contracts {
		if c.CompanyID == companyID && c.Status == domain.ContractStatusActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeContractRepo) Update(_ context.Context, contract *domain.Contract) error {
	for i := range r.contracts {
		if r.contracts[i].ID == contract.ID {
			r.contracts[i] = *contract
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeContractRepo) Delete(_ context.Context, id string) error {
	for i := range r.contracts {
		if r.contracts[i].ID == id {
			r.contracts = append(r.contracts[:i], r.contracts[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}
