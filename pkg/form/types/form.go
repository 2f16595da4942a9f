package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form is the persisted aggregate around an item collection. Items are stored
// as the raw ordered list; the engine re-validates them whenever a collection
// value is needed, so a form loaded from the database carries the same
// guarantees as one that was just created.
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Period      AnswerPeriod       `bson:"period" json:"period"`
	Items       []FormItem         `bson:"items" json:"items"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	AuthorID    string             `bson:"authorId,omitempty" json:"authorId,omitempty"`
}

// AnswerPeriod bounds when answers are accepted, in unix seconds. A zero End
// means the form stays open.
type AnswerPeriod struct {
	StartsAt int64 `bson:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt   int64 `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
}

func (p AnswerPeriod) Contains(t time.Time) bool {
	unix := t.Unix()
	if p.StartsAt != 0 && unix < p.StartsAt {
		return false
	}
	if p.EndsAt != 0 && unix > p.EndsAt {
		return false
	}
	return true
}

// FormAnswer is one project's submitted answer set for a form.
type FormAnswer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID      primitive.ObjectID `bson:"formId" json:"formId"`
	ProjectID   string             `bson:"projectId" json:"projectId"`
	AuthorID    string             `bson:"authorId,omitempty" json:"authorId,omitempty"`
	Items       []AnswerItem       `bson:"items" json:"items"`
	SubmittedAt int64              `bson:"submittedAt" json:"submittedAt"`
	UpdatedAt   int64              `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
