package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

func newTestContractService(repo *fakeContractRepo) *ContractService {
	svc := NewContractService(repo)
	svc.Now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	svc.NewID = func() string { return "contract-1" }
	return svc
}

func TestContractCreateValidation(t *testing.T) {
	valid := ContractInput{
		CompanyID: "comp-1",
		ServiceID: "svc-1",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		SLAHours:  24,
		Status:    domain.ContractStatusActive,
	}

	tests := []struct {
		name    string
		mutate  func(*ContractInput)
		wantErr string
	}{
		{name: "valid input", mutate: func(*ContractInput) {}},
		{
			name:    "missing company",
			mutate:  func(in *ContractInput) { in.CompanyID = "" },
			wantErr: "VALIDATION_FAILED",
		},
		{
			name:    "missing service",
			mutate:  func(in *ContractInput) { in.ServiceID = "" },
			wantErr: "VALIDATION_FAILED",
		},
		{
			name:    "zero sla bound",
			mutate:  func(in *ContractInput) { in.SLAHours = 0 },
			wantErr: "VALIDATION_FAILED",
		},
		{
			name:    "negative sla bound",
			mutate:  func(in *ContractInput) { in.SLAHours = -5 },
			wantErr: "VALIDATION_FAILED",
		},
		{
			name:    "unknown status",
			mutate:  func(in *ContractInput) { in.Status = domain.ContractStatus("paused") },
			wantErr: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := newTestContractService(&fakeContractRepo{}).Create(context.Background(), input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("create: %v", err)
				}
				return
			}
			assertDomainCode(t, err, tt.wantErr)
		})
	}
}

func TestContractListClientScope(t *testing.T) {
	repo := &fakeContractRepo{contracts: []domain.Contract{
		{ID: "c-1", CompanyID: "comp-1", Status: domain.ContractStatusActive},
		{ID: "c-2", CompanyID: "comp-2", Status: domain.ContractStatusActive},
	}}
	svc := newTestContractService(repo)

	otherCompany := "comp-2"
	contracts, err := svc.List(context.Background(), clientUser("comp-1"), &otherCompany)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(contracts) != 1 || contracts[0].CompanyID != "comp-1" {
		t.Fatalf("contracts = %+v, want pinned to comp-1", contracts)
	}
}

func TestActiveContractLookup(t *testing.T) {
	repo := &fakeContractRepo{contracts: []domain.Contract{
		{ID: "c-active", CompanyID: "comp-1", SLAHours: 24, Status: domain.ContractStatusActive},
		{ID: "c-expired", CompanyID: "comp-1", SLAHours: 24, Status: domain.ContractStatusExpired},
		{ID: "c-other", CompanyID: "comp-2", SLAHours: 24, Status: domain.ContractStatusActive},
	}}
	sla := newTestSLAService(newFakeTicketRepo(), repo, time.Now())

	contracts, err := sla.ActiveContractsFor(context.Background(), "comp-1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(contracts) != 1 || contracts[0].ID != "c-active" {
		t.Fatalf("contracts = %+v, want only c-active", contracts)
	}

	// A company with no contracts is a normal empty result.
	contracts, err = sla.ActiveContractsFor(context.Background(), "comp-none")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(contracts) != 0 {
		t.Fatalf("contracts = %+v, want empty", contracts)
	}
}
