package cli

import (
	"context"
	"testing"

	"github.com/darasahq/darasa/internal/domain"
	"github.com/darasahq/darasa/internal/notes"
	"github.com/darasahq/darasa/internal/progress"
	"github.com/darasahq/darasa/internal/repository"
	"github.com/darasahq/darasa/internal/session"
	"github.com/darasahq/darasa/internal/teatest"
	"github.com/darasahq/darasa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudyDriver(t *testing.T) *teatest.Driver {
	database := testutil.NewTestDB(t)
	lessons := repository.NewSQLiteLessonRepo(database)
	contentRepo := repository.NewSQLiteContentRepo(database)
	live := repository.NewSQLiteLiveSessionRepo(database)
	kv := repository.NewSQLiteKeyValueRepo(database)

	ctx := context.Background()
	l := testutil.NewTestLesson("Optics")
	require.NoError(t, lessons.Create(ctx, l))
	require.NoError(t, contentRepo.Create(ctx, testutil.NewTestContentItem(l.ID, domain.ContentVideo, "Refraction", testutil.WithSequence(1))))
	require.NoError(t, contentRepo.Create(ctx, testutil.NewTestContentItem(l.ID, domain.ContentText, "Snell's law", testutil.WithSequence(2))))

	ctrl := session.NewController(l.ID, lessons, live, progress.NewStore(kv), notes.NewSidecar(kv), nil)
	return teatest.New(t, newStudyModel(ctx, ctrl))
}

func studyState(d *teatest.Driver) *studyModel {
	return d.Model.(*studyModel)
}

func TestStudyModel_LoadsLesson(t *testing.T) {
	d := newStudyDriver(t)

	assert.Equal(t, session.StatusReady, studyState(d).vm.Status)
	view := d.View()
	assert.Contains(t, view, "OPTICS")
	assert.Contains(t, view, "Refraction")
	assert.Contains(t, view, "0%")
}

func TestStudyModel_NavigateAndToggle(t *testing.T) {
	d := newStudyDriver(t)

	d.PressSpace()
	assert.Equal(t, 50, studyState(d).vm.Progress.Percent)
	assert.True(t, studyState(d).vm.Items[0].Completed)

	d.PressDown()
	assert.Equal(t, studyState(d).vm.Items[1].ID, studyState(d).vm.ActiveID)

	d.PressSpace()
	assert.Equal(t, 100, studyState(d).vm.Progress.Percent)
	assert.Equal(t, 600, studyState(d).vm.Progress.XP)
}

func TestStudyModel_ToggleBackOff(t *testing.T) {
	d := newStudyDriver(t)

	d.PressSpace()
	d.PressSpace()

	assert.Equal(t, 0, studyState(d).vm.Progress.Percent)
	assert.False(t, studyState(d).vm.Items[0].Completed)
}

func TestStudyModel_NavigationStopsAtEdges(t *testing.T) {
	d := newStudyDriver(t)
	first := studyState(d).vm.ActiveID

	d.PressUp()
	assert.Equal(t, first, studyState(d).vm.ActiveID)

	d.PressDown()
	d.PressDown()
	assert.Equal(t, studyState(d).vm.Items[1].ID, studyState(d).vm.ActiveID)
}

func TestStudyModel_NoteEntry(t *testing.T) {
	d := newStudyDriver(t)

	d.PressKey('n')
	assert.Equal(t, modeNote, studyState(d).mode)

	d.Type("great class")
	d.PressEnter()

	assert.Equal(t, modeBrowse, studyState(d).mode)
	assert.Equal(t, "great class", studyState(d).vm.Note)
	assert.NotNil(t, studyState(d).vm.NoteSavedAt)
}

func TestStudyModel_ClearNoteNeedsConfirm(t *testing.T) {
	d := newStudyDriver(t)

	d.PressKey('n')
	d.Type("x")
	d.PressEnter()
	require.Equal(t, "x", studyState(d).vm.Note)

	d.PressKey('c')
	assert.Equal(t, modeConfirmClear, studyState(d).mode)

	// Declining keeps the note.
	d.PressKey('n')
	assert.Equal(t, "x", studyState(d).vm.Note)
	assert.Equal(t, modeBrowse, studyState(d).mode)

	d.PressKey('c')
	d.PressKey('y')
	assert.Empty(t, studyState(d).vm.Note)
}

func TestStudyModel_EscCancelsInput(t *testing.T) {
	d := newStudyDriver(t)

	d.PressKey('n')
	d.Type("z")
	d.PressEsc()

	assert.Equal(t, modeBrowse, studyState(d).mode)
	assert.Empty(t, studyState(d).vm.Note)
}

func TestStudyModel_QuitKey(t *testing.T) {
	d := newStudyDriver(t)

	d.PressKey('q')

	assert.True(t, d.Quitting)
}

func TestStudyModel_NotFoundLesson(t *testing.T) {
	database := testutil.NewTestDB(t)
	lessons := repository.NewSQLiteLessonRepo(database)
	live := repository.NewSQLiteLiveSessionRepo(database)
	kv := repository.NewSQLiteKeyValueRepo(database)

	ctrl := session.NewController("missing", lessons, live, progress.NewStore(kv), notes.NewSidecar(kv), nil)
	d := teatest.New(t, newStudyModel(context.Background(), ctrl))

	assert.Equal(t, session.StatusNotFound, studyState(d).vm.Status)
	assert.Contains(t, d.View(), "not found")
}
