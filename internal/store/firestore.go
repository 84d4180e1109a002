package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smartcampus/campus-api/internal/config"
	"github.com/smartcampus/campus-api/internal/logger"
)

// Firestore implements Store against the hosted Firestore document database.
type Firestore struct {
	client *firestore.Client
	appID  string
}

// NewFirestore connects using the service-account credentials file. The tenant
// id is the explicit override when set, otherwise the project id read from the
// credentials file, otherwise the fixed default.
func NewFirestore(ctx context.Context, credentialsFile, appIDOverride string) (*Firestore, error) {
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var creds struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}

	projectID := creds.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	appID := appIDOverride
	if appID == "" {
		appID = creds.ProjectID
	}
	if appID == "" {
		appID = config.DefaultAppID
	}

	logger.Store().Info("Firestore initialized", "app_id", appID)
	return &Firestore{client: client, appID: appID}, nil
}

// AppID returns the resolved tenant namespace.
func (f *Firestore) AppID() string {
	return f.appID
}

func (f *Firestore) collection(recordType string) *firestore.CollectionRef {
	return f.client.Collection(CollectionPath(f.appID, recordType))
}

func (f *Firestore) Create(ctx context.Context, recordType string, fields map[string]any) (string, error) {
	data := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data[TimestampField] = firestore.ServerTimestamp

	ref, _, err := f.collection(recordType).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("create %s document: %w", recordType, err)
	}
	return ref.ID, nil
}

func (f *Firestore) ListAll(ctx context.Context, recordType string, byTimestampDesc bool) ([]Document, error) {
	q := f.collection(recordType).Query
	if byTimestampDesc {
		q = q.OrderBy(TimestampField, firestore.Desc)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list %s documents: %w", recordType, err)
	}

	docs := make([]Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return docs, nil
}

func (f *Firestore) Get(ctx context.Context, recordType, id string) (Document, error) {
	snap, err := f.collection(recordType).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("get %s/%s: %w", recordType, id, err)
	}
	return Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (f *Firestore) SetMerge(ctx context.Context, recordType, id string, fields map[string]any) error {
	data := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data[TimestampField] = firestore.ServerTimestamp

	if _, err := f.collection(recordType).Doc(id).Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("merge %s/%s: %w", recordType, id, err)
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, recordType, id string) error {
	if _, err := f.collection(recordType).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", recordType, id, err)
	}
	return nil
}

// Close releases the underlying client.
func (f *Firestore) Close() error {
	return f.client.Close()
}
