package form

import (
	"errors"
	"log/slog"
	"time"

	formdb "github.com/sohosai/sos-backend/pkg/db/form"
	"github.com/sohosai/sos-backend/pkg/form/formengine"
	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
)

var (
	formDBService *formdb.FormDBService
)

var (
	ErrAnswerPeriodNotStarted = errors.New("answer period has not started")
	ErrAnswerPeriodEnded      = errors.New("answer period has ended")
	ErrAnswerAlreadyExists    = errors.New("project has already answered this form")
)

func Init(formDB *formdb.FormDBService) {
	formDBService = formDB
}

// CreateForm validates the item definitions and persists a new form. The
// stored item order is the validated one, so later loads replay the same
// collection.
func CreateForm(instanceID string, form formTypes.Form) (formTypes.Form, error) {
	assignMissingIDs(form.Items)
	items, err := formengine.ValidateItems(form.Items)
	if err != nil {
		return form, err
	}
	form.Items = items.Items()
	form.CreatedAt = time.Now().Unix()
	form.UpdatedAt = form.CreatedAt

	if err := formDBService.SaveForm(instanceID, &form); err != nil {
		slog.Error("Error saving form", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
		return form, err
	}
	return form, nil
}

// UpdateForm replaces the form definition. Existing answers are not migrated;
// answers submitted before the update keep referring to the old item ids.
func UpdateForm(instanceID string, form formTypes.Form) (formTypes.Form, error) {
	existing, err := formDBService.GetFormByID(instanceID, form.ID.Hex())
	if err != nil {
		return form, err
	}

	assignMissingIDs(form.Items)
	items, err := formengine.ValidateItems(form.Items)
	if err != nil {
		return form, err
	}
	form.Items = items.Items()
	form.CreatedAt = existing.CreatedAt
	form.UpdatedAt = time.Now().Unix()

	if err := formDBService.ReplaceForm(instanceID, &form); err != nil {
		slog.Error("Error updating form", slog.String("instanceID", instanceID), slog.String("formID", form.ID.Hex()), slog.String("error", err.Error()))
		return form, err
	}
	return form, nil
}

func GetForm(instanceID string, formID string) (formTypes.Form, error) {
	return formDBService.GetFormByID(instanceID, formID)
}

func GetForms(instanceID string) ([]formTypes.Form, error) {
	return formDBService.GetForms(instanceID)
}

func DeleteForm(instanceID string, formID string) error {
	return formDBService.DeleteForm(instanceID, formID)
}

// SubmitAnswer checks the submission against the form definition and the
// answer period and persists it. Each project may answer a form once; updates
// go through UpdateAnswer.
func SubmitAnswer(instanceID string, answer formTypes.FormAnswer) (formTypes.FormAnswer, error) {
	form, err := formDBService.GetFormByID(instanceID, answer.FormID.Hex())
	if err != nil {
		return answer, err
	}

	if err := checkAnswerPeriod(form, time.Now()); err != nil {
		return answer, err
	}

	if _, err := formDBService.GetFormAnswerForProject(instanceID, answer.FormID.Hex(), answer.ProjectID); err == nil {
		return answer, ErrAnswerAlreadyExists
	}

	if err := checkAnswerAgainstForm(form, answer.Items); err != nil {
		return answer, err
	}

	answer.SubmittedAt = time.Now().Unix()
	answer.UpdatedAt = answer.SubmittedAt
	if err := formDBService.SaveFormAnswer(instanceID, &answer); err != nil {
		slog.Error("Error saving form answer", slog.String("instanceID", instanceID), slog.String("formID", answer.FormID.Hex()), slog.String("projectID", answer.ProjectID), slog.String("error", err.Error()))
		return answer, err
	}
	return answer, nil
}

// UpdateAnswer replaces a project's existing submission. The same checks as
// for a fresh submission apply, including the answer period.
func UpdateAnswer(instanceID string, answer formTypes.FormAnswer) (formTypes.FormAnswer, error) {
	form, err := formDBService.GetFormByID(instanceID, answer.FormID.Hex())
	if err != nil {
		return answer, err
	}

	if err := checkAnswerPeriod(form, time.Now()); err != nil {
		return answer, err
	}

	existing, err := formDBService.GetFormAnswerForProject(instanceID, answer.FormID.Hex(), answer.ProjectID)
	if err != nil {
		return answer, err
	}

	if err := checkAnswerAgainstForm(form, answer.Items); err != nil {
		return answer, err
	}

	answer.ID = existing.ID
	answer.SubmittedAt = existing.SubmittedAt
	answer.UpdatedAt = time.Now().Unix()
	if err := formDBService.ReplaceFormAnswer(instanceID, &answer); err != nil {
		slog.Error("Error updating form answer", slog.String("instanceID", instanceID), slog.String("formID", answer.FormID.Hex()), slog.String("projectID", answer.ProjectID), slog.String("error", err.Error()))
		return answer, err
	}
	return answer, nil
}

func GetAnswer(instanceID string, answerID string) (formTypes.FormAnswer, error) {
	return formDBService.GetFormAnswerByID(instanceID, answerID)
}

func GetAnswerForProject(instanceID string, formID string, projectID string) (formTypes.FormAnswer, error) {
	return formDBService.GetFormAnswerForProject(instanceID, formID, projectID)
}

func GetAnswersForForm(instanceID string, formID string) ([]formTypes.FormAnswer, error) {
	return formDBService.GetFormAnswers(instanceID, formID)
}

// assignMissingIDs generates ids for items and options submitted without one,
// so clients only need to carry ids for entries they reference in conditions.
// Supplied ids are kept untouched.
func assignMissingIDs(items []formTypes.FormItem) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = formTypes.NewFormItemID()
		}
		body := &items[i].Body
		switch {
		case body.Checkbox != nil:
			for j := range body.Checkbox.Boxes {
				if body.Checkbox.Boxes[j].ID == "" {
					body.Checkbox.Boxes[j].ID = formTypes.NewCheckboxID()
				}
			}
		case body.Radio != nil:
			for j := range body.Radio.Buttons {
				if body.Radio.Buttons[j].ID == "" {
					body.Radio.Buttons[j].ID = formTypes.NewRadioID()
				}
			}
		case body.GridRadio != nil:
			for j := range body.GridRadio.Rows {
				if body.GridRadio.Rows[j].ID == "" {
					body.GridRadio.Rows[j].ID = formTypes.NewGridRadioRowID()
				}
			}
			for j := range body.GridRadio.Columns {
				if body.GridRadio.Columns[j].ID == "" {
					body.GridRadio.Columns[j].ID = formTypes.NewGridRadioColumnID()
				}
			}
		}
	}
}

func checkAnswerPeriod(form formTypes.Form, at time.Time) error {
	if form.Period.Contains(at) {
		return nil
	}
	if form.Period.StartsAt != 0 && at.Unix() < form.Period.StartsAt {
		return ErrAnswerPeriodNotStarted
	}
	return ErrAnswerPeriodEnded
}

// checkAnswerAgainstForm re-validates the stored item definitions before
// checking, so a form written by an older release still goes through the
// current invariants.
func checkAnswerAgainstForm(form formTypes.Form, answers []formTypes.AnswerItem) error {
	items, err := formengine.ValidateItems(form.Items)
	if err != nil {
		slog.Error("Stored form failed item validation", slog.String("formID", form.ID.Hex()), slog.String("error", err.Error()))
		return err
	}
	return items.CheckAnswers(answers)
}
