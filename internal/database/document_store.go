package database

import (
	"context"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/wso2/sales-lead-scoring-service/internal/system/config"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

// DocumentStore holds the client and database handle for the customer data
// document store.
type DocumentStore struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	storeInstance *DocumentStore
	once          sync.Once
)

// ConnectDocumentStore initializes the global document store connection from
// the datasource configuration. The connection is established once and reused
// for the process lifetime.
func ConnectDocumentStore(cfg config.DataSourceConfig) (*DocumentStore, error) {
	var connectErr error

	once.Do(func() {
		logger := log.GetLogger()

		clientOptions := options.Client().ApplyURI(cfg.Endpoint)
		if cfg.Credential != "" {
			username, password, found := strings.Cut(cfg.Credential, ":")
			if !found {
				connectErr = pkgerrors.New("credential must be given as username:password")
				return
			}
			clientOptions.SetAuth(options.Credential{
				Username: username,
				Password: password,
			})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			connectErr = pkgerrors.Wrap(err, "document store connection failed")
			return
		}

		// Ping to ensure the connection is live before anything is served.
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			connectErr = pkgerrors.Wrap(err, "document store ping failed")
			return
		}

		logger.Info("Connected to the customer data document store",
			log.String("database", cfg.Database))

		storeInstance = &DocumentStore{
			Client:   client,
			Database: client.Database(cfg.Database),
		}
	})

	if connectErr != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.DOC_STORE_CONNECT.Code,
			Message: errors2.DOC_STORE_CONNECT.Message,
		}, connectErr)
	}
	return storeInstance, nil
}

// GetDocumentStore returns the document store instance.
func GetDocumentStore() *DocumentStore {
	return storeInstance
}

// SetTestDocumentStore overrides the singleton. Intended for tests.
func SetTestDocumentStore(client *mongo.Client, database string) {
	storeInstance = &DocumentStore{
		Client:   client,
		Database: client.Database(database),
	}
}

// Ping verifies the document store connection, used by readiness checks.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}
