package form

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

var indexesForFormAnswersCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "formId", Value: 1},
			{Key: "projectId", Value: 1},
		},
		Options: options.Index().SetName("formId_projectId_1").SetUnique(true),
	},
	{
		Keys: bson.D{
			{Key: "formId", Value: 1},
			{Key: "submittedAt", Value: -1},
		},
		Options: options.Index().SetName("formId_submittedAt_-1"),
	},
}

func (dbService *FormDBService) CreateDefaultIndexesForFormAnswersCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionFormAnswers(instanceID).Indexes().CreateMany(ctx, indexesForFormAnswersCollection)
	return err
}

func (dbService *FormDBService) SaveFormAnswer(instanceID string, answer *formTypes.FormAnswer) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionFormAnswers(instanceID).InsertOne(ctx, answer)
	if err != nil {
		return err
	}
	answer.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *FormDBService) GetFormAnswerByID(instanceID string, answerID string) (answer formTypes.FormAnswer, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(answerID)
	if err != nil {
		return answer, err
	}

	filter := bson.M{"_id": _id}
	err = dbService.collectionFormAnswers(instanceID).FindOne(ctx, filter).Decode(&answer)
	return answer, err
}

func (dbService *FormDBService) GetFormAnswerForProject(instanceID string, formID string, projectID string) (answer formTypes.FormAnswer, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_formID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return answer, err
	}

	filter := bson.M{"formId": _formID, "projectId": projectID}
	err = dbService.collectionFormAnswers(instanceID).FindOne(ctx, filter).Decode(&answer)
	return answer, err
}

func (dbService *FormDBService) GetFormAnswers(instanceID string, formID string) (answers []formTypes.FormAnswer, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_formID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return answers, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := dbService.collectionFormAnswers(instanceID).Find(ctx, bson.M{"formId": _formID}, opts)
	if err != nil {
		return answers, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &answers)
	return answers, err
}

// get paginated answers by query
func (dbService *FormDBService) GetFormAnswersPaginated(instanceID string, formID string, filter bson.M, sort bson.M, page int64, limit int64) (answers []formTypes.FormAnswer, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_formID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return answers, nil, err
	}

	if filter == nil {
		filter = bson.M{}
	}
	filter["formId"] = _formID
	if len(sort) == 0 {
		sort = bson.M{"submittedAt": -1}
	}

	totalCount, err := dbService.GetFormAnswersCount(instanceID, filter)
	if err != nil {
		return answers, nil, err
	}

	paginationInfo = prepPaginationInfos(
		totalCount,
		page,
		limit,
	)

	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(paginationInfo.PageSize)
	cursor, err := dbService.collectionFormAnswers(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return answers, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &answers)
	if err != nil {
		return answers, nil, err
	}

	return answers, paginationInfo, nil
}

// get answers count by query
func (dbService *FormDBService) GetFormAnswersCount(instanceID string, filter bson.M) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionFormAnswers(instanceID).CountDocuments(ctx, filter)
}

func (dbService *FormDBService) ReplaceFormAnswer(instanceID string, answer *formTypes.FormAnswer) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if answer.ID.IsZero() {
		return errors.New("answer id must be set for replace")
	}

	filter := bson.M{"_id": answer.ID}
	res, err := dbService.collectionFormAnswers(instanceID).ReplaceOne(ctx, filter, answer)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("form answer not found")
	}
	return nil
}
