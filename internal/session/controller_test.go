package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/darasahq/darasa/internal/content"
	"github.com/darasahq/darasa/internal/domain"
	"github.com/darasahq/darasa/internal/notes"
	"github.com/darasahq/darasa/internal/progress"
	"github.com/darasahq/darasa/internal/repository"
	"github.com/darasahq/darasa/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contextDeps struct {
	db      *sql.DB
	lessons *repository.SQLiteLessonRepo
	live    repository.LiveSessionRepo
	store   *progress.Store
	notes   *notes.Sidecar
}

func newDeps(t *testing.T) *contextDeps {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKeyValueRepo(database)
	return &contextDeps{
		db:      database,
		lessons: repository.NewSQLiteLessonRepo(database),
		live:    repository.NewSQLiteLiveSessionRepo(database),
		store:   progress.NewStore(kv),
		notes:   notes.NewSidecar(kv),
	}
}

func (d *contextDeps) newController(lessonID string) *Controller {
	return NewController(lessonID, d.lessons, d.live, d.store, d.notes, nil)
}

func seedLesson(t *testing.T, d *contextDeps, lesson *domain.Lesson, items ...*domain.ContentItem) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, d.lessons.Create(ctx, lesson))
	contentRepo := repository.NewSQLiteContentRepo(d.db)
	for _, item := range items {
		item.LessonID = lesson.ID
		require.NoError(t, contentRepo.Create(ctx, item))
	}
}

func TestController_LoadNotFound(t *testing.T) {
	deps := newDeps(t)
	ctrl := deps.newController("missing")

	vm := ctrl.Load(context.Background())
	assert.Equal(t, StatusNotFound, vm.Status)
	assert.Empty(t, vm.Items)
}

func TestController_LoadReadyWithZeroContent(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Empty lesson")
	seedLesson(t, deps, lesson)

	vm := deps.newController(lesson.ID).Load(context.Background())
	assert.Equal(t, StatusReady, vm.Status, "a content-free lesson is Ready, not an error")
	assert.Equal(t, 0, vm.Progress.Percent)
}

func TestController_LoadFiltersAndOrdersContent(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	seedLesson(t, deps, lesson,
		testutil.NewTestContentItem(lesson.ID, domain.ContentVideo, "Intro", testutil.WithSequence(20)),
		testutil.NewTestContentItem(lesson.ID, domain.ContentText, "Reading", testutil.WithSequence(10)),
		testutil.NewTestContentItem(lesson.ID, domain.ContentQuiz, "Hidden quiz", testutil.WithSequence(5), testutil.Unpublished()),
	)

	vm := deps.newController(lesson.ID).Load(context.Background())
	require.Equal(t, StatusReady, vm.Status)
	require.Len(t, vm.Items, 2)
	assert.Equal(t, "Reading", vm.Items[0].Title)
	assert.Equal(t, "Intro", vm.Items[1].Title)
	assert.Equal(t, vm.Items[0].ID, vm.ActiveID, "first published item becomes active")
	assert.Equal(t, 2, vm.Progress.Published, "unpublished items stay out of progress")
}

func TestController_SelectItem(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	itemA := testutil.NewTestContentItem(lesson.ID, domain.ContentText, "A", testutil.WithSequence(1))
	itemB := testutil.NewTestContentItem(lesson.ID, domain.ContentText, "B", testutil.WithSequence(2))
	hidden := testutil.NewTestContentItem(lesson.ID, domain.ContentText, "H", testutil.WithSequence(3), testutil.Unpublished())
	seedLesson(t, deps, lesson, itemA, itemB, hidden)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())

	vm := ctrl.Dispatch(context.Background(), SelectItem{ContentID: itemB.ID})
	assert.Equal(t, itemB.ID, vm.ActiveID)

	vm = ctrl.Dispatch(context.Background(), SelectItem{ContentID: "nope"})
	assert.Equal(t, itemB.ID, vm.ActiveID, "unknown id is a no-op")

	vm = ctrl.Dispatch(context.Background(), SelectItem{ContentID: hidden.ID})
	assert.Equal(t, itemB.ID, vm.ActiveID, "unpublished items are not selectable")
}

func TestController_ManualCompletionToggles(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	item := testutil.NewTestContentItem(lesson.ID, domain.ContentVideo, "Watch", testutil.WithSequence(1))
	seedLesson(t, deps, lesson, item)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())

	vm := ctrl.Dispatch(context.Background(), CompletionEvent{ContentID: item.ID})
	assert.True(t, vm.Items[0].Completed)
	assert.Equal(t, 100, vm.Progress.Percent)
	assert.Equal(t, progress.XPPerItem+progress.XPCompletionBonus, vm.Progress.XP)

	vm = ctrl.Dispatch(context.Background(), CompletionEvent{ContentID: item.ID})
	assert.False(t, vm.Items[0].Completed, "manual policy toggles off")
	assert.Equal(t, 0, vm.Progress.XP, "the completion bonus retracts with the set")
}

func TestController_RendererCompletionIsOneWay(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	deck := testutil.NewTestContentItem(lesson.ID, domain.ContentFlashcard, "Deck", testutil.WithSequence(1))
	seedLesson(t, deps, lesson, deck)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())

	vm := ctrl.Dispatch(context.Background(), CompletionEvent{ContentID: deck.ID})
	assert.True(t, vm.Items[0].Completed)

	// A second renderer signal must not un-complete the deck.
	vm = ctrl.Dispatch(context.Background(), CompletionEvent{ContentID: deck.ID})
	assert.True(t, vm.Items[0].Completed)
}

func TestController_CompletionPersistsAcrossReload(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	item := testutil.NewTestContentItem(lesson.ID, domain.ContentVideo, "Watch", testutil.WithSequence(1))
	other := testutil.NewTestContentItem(lesson.ID, domain.ContentText, "Read", testutil.WithSequence(2))
	seedLesson(t, deps, lesson, item, other)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())
	ctrl.Dispatch(context.Background(), CompletionEvent{ContentID: item.ID})

	// A brand-new session over the same lesson restores the set before
	// its first snapshot.
	vm := deps.newController(lesson.ID).Load(context.Background())
	assert.True(t, vm.Items[0].Completed)
	assert.Equal(t, 50, vm.Progress.Percent)
}

func TestController_CheckpointSubmission(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	cp := testutil.NewTestContentItem(lesson.ID, domain.ContentCheckpoint, "Check",
		testutil.WithSequence(1),
		testutil.WithContentData(testutil.QuizCheckpointData("Pick A", "A", "B")))
	seedLesson(t, deps, lesson, cp)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())

	vm := ctrl.Dispatch(context.Background(), SubmitCheckpoint{ContentID: cp.ID, Answer: "B"})
	result, ok := vm.CheckpointResults[cp.ID]
	require.True(t, ok)
	assert.False(t, result.Correct)
	assert.True(t, result.Complete)
	assert.True(t, vm.Items[0].Completed, "a wrong answer still completes the checkpoint")
}

func TestController_CheckpointEmptyAnswerIgnored(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	cp := testutil.NewTestContentItem(lesson.ID, domain.ContentCheckpoint, "Check",
		testutil.WithSequence(1),
		testutil.WithContentData(testutil.ReflectionCheckpointData("Thoughts?")))
	seedLesson(t, deps, lesson, cp)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())

	vm := ctrl.Dispatch(context.Background(), SubmitCheckpoint{ContentID: cp.ID, Answer: "   "})
	assert.Empty(t, vm.CheckpointResults)
	assert.False(t, vm.Items[0].Completed)
}

func TestController_CheckpointWithoutDefinitionFailsClosed(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	cp := testutil.NewTestContentItem(lesson.ID, domain.ContentCheckpoint, "Broken", testutil.WithSequence(1))
	seedLesson(t, deps, lesson, cp)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())

	// No ContentData: the submission is dropped, nothing completes and
	// no placeholder checkpoint is substituted.
	vm := ctrl.Dispatch(context.Background(), SubmitCheckpoint{ContentID: cp.ID, Answer: "anything"})
	assert.Empty(t, vm.CheckpointResults)
	assert.False(t, vm.Items[0].Completed)
}

type failingLiveRepo struct{}

func (failingLiveRepo) Create(context.Context, *domain.LiveSessionRef) error {
	return errors.New("unreachable")
}

func (failingLiveRepo) FetchForLesson(context.Context, string) (*domain.LiveSessionRef, error) {
	return nil, errors.New("collaboration service down")
}

func TestController_LiveSessionFailureDoesNotBlockReady(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells", testutil.WithSessionID("vc-1"))
	seedLesson(t, deps, lesson,
		testutil.NewTestContentItem(lesson.ID, domain.ContentText, "Read", testutil.WithSequence(1)))

	ctrl := NewController(lesson.ID, deps.lessons, failingLiveRepo{}, deps.store, deps.notes, nil)
	vm := ctrl.Load(context.Background())

	assert.Equal(t, StatusReady, vm.Status)
	assert.Nil(t, vm.LiveSession)
}

func TestController_LiveSessionAttachedWhenPresent(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells", testutil.WithSessionID("vc-1"))
	seedLesson(t, deps, lesson)

	ref := &domain.LiveSessionRef{ID: "vc-1", LessonID: lesson.ID, JoinURL: "https://meet.example/vc-1", CreatedAt: lesson.CreatedAt}
	require.NoError(t, deps.live.Create(context.Background(), ref))

	vm := deps.newController(lesson.ID).Load(context.Background())
	require.NotNil(t, vm.LiveSession)
	assert.Equal(t, "https://meet.example/vc-1", vm.LiveSession.JoinURL)
}

func TestController_NoteLifecycle(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	seedLesson(t, deps, lesson)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())

	vm := ctrl.Dispatch(context.Background(), SaveNote{Text: "ask about mitosis"})
	assert.Equal(t, "ask about mitosis", vm.Note)
	require.NotNil(t, vm.NoteSavedAt)

	vm = ctrl.Dispatch(context.Background(), ClearNote{Confirmed: false})
	assert.Equal(t, "ask about mitosis", vm.Note, "unconfirmed clear is rejected")

	vm = ctrl.Dispatch(context.Background(), ClearNote{Confirmed: true})
	assert.Equal(t, "", vm.Note)
	assert.Nil(t, vm.NoteSavedAt)
}

func TestController_NoteRestoredOnLoad(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	seedLesson(t, deps, lesson)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())
	ctrl.Dispatch(context.Background(), SaveNote{Text: "persisted"})

	vm := deps.newController(lesson.ID).Load(context.Background())
	assert.Equal(t, "persisted", vm.Note)
}

func TestController_ClosedSessionIgnoresEvents(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	item := testutil.NewTestContentItem(lesson.ID, domain.ContentVideo, "Watch", testutil.WithSequence(1))
	seedLesson(t, deps, lesson, item)

	ctrl := deps.newController(lesson.ID)
	ctrl.Load(context.Background())
	ctrl.Close()

	vm := ctrl.Dispatch(context.Background(), CompletionEvent{ContentID: item.ID})
	assert.False(t, vm.Items[0].Completed, "a torn-down session must not mutate state")
}

func TestController_EventsBeforeReadyAreIgnored(t *testing.T) {
	deps := newDeps(t)
	ctrl := deps.newController("missing")
	ctrl.Load(context.Background())

	vm := ctrl.Dispatch(context.Background(), CompletionEvent{ContentID: "c1"})
	assert.Equal(t, StatusNotFound, vm.Status)
	assert.Equal(t, 0, vm.Progress.XP)
}

func TestController_ViewModelResolvesRenderSpecs(t *testing.T) {
	deps := newDeps(t)
	lesson := testutil.NewTestLesson("Cells")
	seedLesson(t, deps, lesson,
		testutil.NewTestContentItem(lesson.ID, domain.ContentFlashcard, "Deck", testutil.WithSequence(1)),
		testutil.NewTestContentItem(lesson.ID, domain.ContentType("FOO_BAR"), "Mystery", testutil.WithSequence(2)),
	)

	vm := deps.newController(lesson.ID).Load(context.Background())
	require.Len(t, vm.Items, 2)
	assert.Equal(t, content.RendererFlashcards, vm.Items[0].Renderer)
	assert.Equal(t, content.PolicyRendererSignal, vm.Items[0].Policy)
	assert.Equal(t, content.RendererResource, vm.Items[1].Renderer, "unknown types degrade to the resource renderer")
	assert.Equal(t, content.PolicyManual, vm.Items[1].Policy)
}
