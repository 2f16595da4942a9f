package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/sohosai/sos-backend/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_FORMS        = "forms"
	COLLECTION_NAME_FORM_ANSWERS = "formAnswers"
)

type FormDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
	InstanceIDs     []string
}

func NewFormDBService(configs db.DBConfig) (*FormDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	formDBSc := &FormDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
		InstanceIDs:     configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		if err := formDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for form DB", slog.String("error", err.Error()))
		}
	}

	return formDBSc, nil
}

func (dbService *FormDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_formDB"
}

func (dbService *FormDBService) collectionForms(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_FORMS)
}

func (dbService *FormDBService) collectionFormAnswers(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_FORM_ANSWERS)
}

func (dbService *FormDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *FormDBService) CreateDefaultIndexes() {
	if err := dbService.ensureIndexes(); err != nil {
		slog.Error("Error creating indexes for form DB", slog.String("error", err.Error()))
	}
}

func (dbService *FormDBService) DropIndexes(dropAll bool) {
	for _, instanceID := range dbService.InstanceIDs {
		dbService.dropIndexesForCollection(dbService.collectionForms(instanceID), instanceID, indexesForFormsCollection, dropAll)
		dbService.dropIndexesForCollection(dbService.collectionFormAnswers(instanceID), instanceID, indexesForFormAnswersCollection, dropAll)
	}
}

func (dbService *FormDBService) dropIndexesForCollection(collection *mongo.Collection, instanceID string, defaultIndexes []mongo.IndexModel, dropAll bool) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if dropAll {
		_, err := collection.Indexes().DropAll(ctx)
		if err != nil {
			slog.Error("Error dropping all indexes", slog.String("error", err.Error()), slog.String("instanceID", instanceID), slog.String("collection", collection.Name()))
		}
		return
	}

	for _, index := range defaultIndexes {
		indexName := *index.Options.Name
		_, err := collection.Indexes().DropOne(ctx, indexName)
		if err != nil {
			slog.Error("Error dropping index", slog.String("error", err.Error()), slog.String("instanceID", instanceID), slog.String("collection", collection.Name()), slog.String("indexName", indexName))
		}
	}
}

// GetIndexes lists the current indexes per collection for one instance.
func (dbService *FormDBService) GetIndexes(instanceID string) (map[string][]bson.M, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	indexes := map[string][]bson.M{}
	for _, collection := range []*mongo.Collection{
		dbService.collectionForms(instanceID),
		dbService.collectionFormAnswers(instanceID),
	} {
		collectionIndexes, err := db.ListCollectionIndexes(ctx, collection)
		if err != nil {
			return nil, err
		}
		indexes[collection.Name()] = collectionIndexes
	}
	return indexes, nil
}

func (dbService *FormDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for form DB")
	for _, instanceID := range dbService.InstanceIDs {
		if err := dbService.CreateDefaultIndexesForFormsCollection(instanceID); err != nil {
			slog.Error("Error creating indexes for forms", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
		if err := dbService.CreateDefaultIndexesForFormAnswersCollection(instanceID); err != nil {
			slog.Error("Error creating indexes for form answers", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
	}
	return nil
}
