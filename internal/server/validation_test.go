package server

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/FadhilAufa5/kfa-validation-sub001/gen/proto/validation/v1"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
)

func TestValidateRequest(t *testing.T) {
	base := func() *v1.ValidateRequest {
		return &v1.ValidateRequest{
			Path:             "/uploads/jan.xlsx",
			Filename:         "jan.xlsx",
			DocumentType:     "purchase",
			DocumentCategory: "regular",
			UserId:           "u-1",
			HeaderRow:        1,
		}
	}

	t.Run("valid", func(t *testing.T) {
		req, err := validateRequest(base())
		if err != nil {
			t.Fatalf("validateRequest: %v", err)
		}
		if req.Filename != "jan.xlsx" || req.HeaderRow != 1 {
			t.Errorf("unexpected request: %+v", req)
		}
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		in := base()
		in.Filename = "  jan.xlsx  "
		req, err := validateRequest(in)
		if err != nil {
			t.Fatalf("validateRequest: %v", err)
		}
		if req.Filename != "jan.xlsx" {
			t.Errorf("filename = %q, want trimmed", req.Filename)
		}
	})

	t.Run("header row defaults to 1", func(t *testing.T) {
		in := base()
		in.HeaderRow = 0
		req, err := validateRequest(in)
		if err != nil {
			t.Fatalf("validateRequest: %v", err)
		}
		if req.HeaderRow != 1 {
			t.Errorf("header row = %d, want 1", req.HeaderRow)
		}
	})

	mutations := []struct {
		name   string
		mutate func(*v1.ValidateRequest)
	}{
		{"missing path", func(r *v1.ValidateRequest) { r.Path = "" }},
		{"missing filename", func(r *v1.ValidateRequest) { r.Filename = " " }},
		{"missing document type", func(r *v1.ValidateRequest) { r.DocumentType = "" }},
		{"missing document category", func(r *v1.ValidateRequest) { r.DocumentCategory = "" }},
		{"missing user id", func(r *v1.ValidateRequest) { r.UserId = "" }},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(in)
			if _, err := validateRequest(in); status.Code(err) != codes.InvalidArgument {
				t.Errorf("err = %v, want InvalidArgument", err)
			}
		})
	}
}

func TestParseRunID(t *testing.T) {
	if _, err := parseRunID(""); status.Code(err) != codes.InvalidArgument {
		t.Errorf("empty: err = %v, want InvalidArgument", err)
	}
	if _, err := parseRunID("not-a-uuid"); status.Code(err) != codes.InvalidArgument {
		t.Errorf("garbage: err = %v, want InvalidArgument", err)
	}
	id, err := parseRunID(" 4f9d97b1-bf3c-47f4-9f19-6bfbf0f509c7 ")
	if err != nil {
		t.Fatalf("valid uuid: %v", err)
	}
	if id.String() != "4f9d97b1-bf3c-47f4-9f19-6bfbf0f509c7" {
		t.Errorf("id = %s", id)
	}
}

func TestToStatusError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid document type", common.ErrInvalidDocumentType, codes.InvalidArgument},
		{"no source data", common.ErrNoSourceData, codes.FailedPrecondition},
		{"no mapped data", common.ErrNoMappedData, codes.FailedPrecondition},
		{"run in progress", common.ErrRunInProgress, codes.Aborted},
		{"not found", common.ErrNotFound, codes.NotFound},
		{"wrapped app error", common.NewAppError("X", "boom", common.ErrNoSourceData), codes.FailedPrecondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(toStatusError(tt.err)); got != tt.want {
				t.Errorf("code = %v, want %v", got, tt.want)
			}
		})
	}
}
