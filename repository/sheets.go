package repository

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewSheetsClient creates a Google Sheets API client from Service Account
// credentials. GOOGLE_APPLICATION_CREDENTIALS_JSON (inline JSON, used on
// hosts without a writable filesystem) takes precedence over the
// credentials file path.
func NewSheetsClient(ctx context.Context, credentialsPath string) (*sheets.Service, error) {
	var opts []option.ClientOption
	if inline := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"); inline != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(inline)))
	} else {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return svc, nil
}
