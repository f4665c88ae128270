package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

func newTestSystemService(repo *fakeSystemConfigRepo) *SystemService {
	svc := NewSystemService(repo)
	svc.Now = func() time.Time { return time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestSystemConfigDefaultsWhenUnset(t *testing.T) {
	svc := newTestSystemService(&fakeSystemConfigRepo{})

	cfg, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cfg.ID != domain.SystemConfigID {
		t.Errorf("id = %q", cfg.ID)
	}
	if cfg.LogoBase64 != nil || cfg.CompanyName != "" {
		t.Errorf("defaults not empty: %+v", cfg)
	}
}

func TestSystemConfigPartialUpdate(t *testing.T) {
	repo := &fakeSystemConfigRepo{}
	svc := newTestSystemService(repo)

	name := "  Acme MSP  "
	cfg, err := svc.Update(context.Background(), SystemConfigUpdate{CompanyName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cfg.CompanyName != "Acme MSP" {
		t.Errorf("company_name = %q, want trimmed", cfg.CompanyName)
	}

	logo := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	cfg, err = svc.Update(context.Background(), SystemConfigUpdate{LogoBase64: &logo})
	if err != nil {
		t.Fatalf("update logo: %v", err)
	}
	if cfg.CompanyName != "Acme MSP" {
		t.Errorf("company_name lost on logo update: %q", cfg.CompanyName)
	}
	if cfg.LogoBase64 == nil || *cfg.LogoBase64 != logo {
		t.Errorf("logo not stored")
	}
	if repo.stored == nil || repo.stored.UpdatedAt.IsZero() {
		t.Error("updated_at not stamped")
	}
}

func TestSystemConfigRejectsBadLogo(t *testing.T) {
	svc := newTestSystemService(&fakeSystemConfigRepo{})

	bad := "just some text"
	_, err := svc.Update(context.Background(), SystemConfigUpdate{LogoBase64: &bad})
	assertDomainCode(t, err, "VALIDATION_FAILED")

	notBase64 := "data:image/png;base64,!!!!"
	_, err = svc.Update(context.Background(), SystemConfigUpdate{LogoBase64: &notBase64})
	assertDomainCode(t, err, "VALIDATION_FAILED")
}

func TestUploadLogo(t *testing.T) {
	repo := &fakeSystemConfigRepo{}
	svc := newTestSystemService(repo)

	cfg, err := svc.UploadLogo(context.Background(), "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if cfg.LogoBase64 == nil || !strings.HasPrefix(*cfg.LogoBase64, "data:image/png;base64,") {
		t.Fatalf("logo = %v, want png data uri", cfg.LogoBase64)
	}

	_, err = svc.UploadLogo(context.Background(), "application/pdf", []byte{0x25})
	assertDomainCode(t, err, "VALIDATION_FAILED")

	_, err = svc.UploadLogo(context.Background(), "image/png", nil)
	assertDomainCode(t, err, "VALIDATION_FAILED")
}
