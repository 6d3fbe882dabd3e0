package service

import (
	"context"
	"testing"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/pkg/apperrors"
)

// Hardware records have no fallback tier, so without a primary store every
// operation must fail loudly instead of fabricating data.
func TestHardwareServiceWithoutPrimaryStore(t *testing.T) {
	svc := NewHardwareService(nil)
	ctx := context.Background()

	if _, err := svc.List(ctx, HardwareListOptions{}); !apperrors.IsUpstream(err) {
		t.Errorf("List error = %v, want UpstreamError", err)
	}
	if _, err := svc.Show(ctx, 1); !apperrors.IsUpstream(err) {
		t.Errorf("Show error = %v, want UpstreamError", err)
	}
	if _, err := svc.Create(ctx, 1, &dto.CreateServiceRecordRequest{DeviceName: "printer", Issue: "jam"}); !apperrors.IsUpstream(err) {
		t.Errorf("Create error = %v, want UpstreamError", err)
	}
	if _, err := svc.Update(ctx, &dto.UpdateServiceRecordRequest{Id: 1}); !apperrors.IsUpstream(err) {
		t.Errorf("Update error = %v, want UpstreamError", err)
	}
	if err := svc.Delete(ctx, 1); !apperrors.IsUpstream(err) {
		t.Errorf("Delete error = %v, want UpstreamError", err)
	}
}
