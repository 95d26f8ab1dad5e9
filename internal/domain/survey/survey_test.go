package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftSurvey(t *testing.T) *Survey {
	t.Helper()
	s, err := NewSurvey("service feedback", "after-visit survey", []*Question{
		{ID: 1, Text: "rating", Type: QuestionTypeSingle, Required: true, Options: []*Option{
			{ID: 10, Text: "good"}, {ID: 11, Text: "bad"},
		}},
		{ID: 2, Text: "which services", Type: QuestionTypeMulti, Options: []*Option{
			{ID: 20, Text: "repair"}, {ID: 21, Text: "install"},
		}},
		{ID: 3, Text: "comments", Type: QuestionTypeText},
	})
	require.NoError(t, err)
	return s
}

func TestNewSurvey_Validation(t *testing.T) {
	_, err := NewSurvey("", "", nil)
	assert.Error(t, err)

	_, err = NewSurvey("t", "", []*Question{{Text: "q", Type: QuestionTypeSingle, Options: []*Option{{ID: 1}}}})
	assert.Error(t, err, "single choice with one option")

	_, err = NewSurvey("t", "", []*Question{{Text: "q", Type: QuestionTypeText, Options: []*Option{{ID: 1}}}})
	assert.Error(t, err, "text question with options")

	_, err = NewSurvey("t", "", []*Question{{Text: "q", Type: "weird"}})
	assert.Error(t, err)
}

func TestSurvey_Lifecycle(t *testing.T) {
	s := draftSurvey(t)
	assert.Equal(t, StatusDraft, s.Status())

	require.NoError(t, s.Publish())
	assert.Equal(t, StatusPublished, s.Status())

	assert.Error(t, s.Update("new title", "", nil), "published survey cannot be edited")
	assert.Error(t, s.Publish())

	require.NoError(t, s.Close())
	assert.Equal(t, StatusClosed, s.Status())
	assert.Error(t, s.Close())
}

func TestBuildResponse(t *testing.T) {
	s := draftSurvey(t)
	require.NoError(t, s.Publish())
	// GetByID returns reconstructed surveys; give this one an id.
	s2, err := ReconstructSurvey(5, s.Title(), s.Description(), s.Status(), s.Questions(), s.CreatedAt(), s.UpdatedAt())
	require.NoError(t, err)

	comment := "all good"
	r, err := BuildResponse(s2, "Wang", "13800138000", []*Answer{
		{QuestionID: 1, OptionIDs: []uint{10}},
		{QuestionID: 2, OptionIDs: []uint{21, 20}},
		{QuestionID: 3, Text: &comment},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), r.SurveyID)
	// Selection order preserved.
	assert.Equal(t, []uint{21, 20}, r.Answers[1].OptionIDs)
}

func TestBuildResponse_Validation(t *testing.T) {
	s := draftSurvey(t)
	require.NoError(t, s.Publish())
	s2, err := ReconstructSurvey(5, s.Title(), s.Description(), s.Status(), s.Questions(), s.CreatedAt(), s.UpdatedAt())
	require.NoError(t, err)

	// Missing required question.
	_, err = BuildResponse(s2, "", "", nil)
	assert.Error(t, err)

	// Unknown question.
	_, err = BuildResponse(s2, "", "", []*Answer{
		{QuestionID: 1, OptionIDs: []uint{10}},
		{QuestionID: 99, OptionIDs: []uint{10}},
	})
	assert.Error(t, err)

	// Unknown option.
	_, err = BuildResponse(s2, "", "", []*Answer{
		{QuestionID: 1, OptionIDs: []uint{999}},
	})
	assert.Error(t, err)

	// Single choice with two options.
	_, err = BuildResponse(s2, "", "", []*Answer{
		{QuestionID: 1, OptionIDs: []uint{10, 11}},
	})
	assert.Error(t, err)

	// Duplicate selection on multi.
	_, err = BuildResponse(s2, "", "", []*Answer{
		{QuestionID: 1, OptionIDs: []uint{10}},
		{QuestionID: 2, OptionIDs: []uint{20, 20}},
	})
	assert.Error(t, err)

	// Draft survey takes no responses.
	draft := draftSurvey(t)
	d2, err := ReconstructSurvey(6, draft.Title(), "", draft.Status(), draft.Questions(), draft.CreatedAt(), draft.UpdatedAt())
	require.NoError(t, err)
	_, err = BuildResponse(d2, "", "", []*Answer{{QuestionID: 1, OptionIDs: []uint{10}}})
	assert.Error(t, err)
}
