package form

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

var indexesForFormsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "period.startsAt", Value: 1},
			{Key: "period.endsAt", Value: 1},
		},
		Options: options.Index().SetName("period.startsAt_period.endsAt_1"),
	},
	{
		Keys: bson.D{
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("createdAt_-1"),
	},
}

func (dbService *FormDBService) CreateDefaultIndexesForFormsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionForms(instanceID).Indexes().CreateMany(ctx, indexesForFormsCollection)
	return err
}

func (dbService *FormDBService) SaveForm(instanceID string, form *formTypes.Form) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionForms(instanceID).InsertOne(ctx, form)
	if err != nil {
		return err
	}
	form.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *FormDBService) GetFormByID(instanceID string, formID string) (form formTypes.Form, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return form, err
	}

	filter := bson.M{"_id": _id}
	err = dbService.collectionForms(instanceID).FindOne(ctx, filter).Decode(&form)
	return form, err
}

func (dbService *FormDBService) GetForms(instanceID string) (forms []formTypes.Form, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := dbService.collectionForms(instanceID).Find(ctx, bson.M{}, opts)
	if err != nil {
		return forms, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &forms)
	return forms, err
}

func (dbService *FormDBService) ReplaceForm(instanceID string, form *formTypes.Form) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if form.ID.IsZero() {
		return errors.New("form id must be set for replace")
	}

	filter := bson.M{"_id": form.ID}
	res, err := dbService.collectionForms(instanceID).ReplaceOne(ctx, filter, form)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("form not found")
	}
	return nil
}

func (dbService *FormDBService) DeleteForm(instanceID string, formID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionForms(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return errors.New("form not found")
	}
	return nil
}
