package domain

// ContentType identifies the kind of material a content item carries.
// Values mirror the content_type column of the lesson catalogue.
type ContentType string

const (
	ContentVideo              ContentType = "VIDEO"
	ContentImage              ContentType = "IMAGE"
	ContentText               ContentType = "TEXT"
	ContentLink               ContentType = "LINK"
	ContentModel3D            ContentType = "3D_MODEL"
	ContentFlashcard          ContentType = "FLASHCARD"
	ContentInteractiveVideo   ContentType = "INTERACTIVE_VIDEO"
	ContentInteractiveBook    ContentType = "INTERACTIVE_BOOK"
	ContentQuiz               ContentType = "QUIZ"
	ContentAssignment         ContentType = "ASSIGNMENT"
	ContentLearningActivities ContentType = "LEARNING_ACTIVITIES"
	ContentLearningOutcomes   ContentType = "LEARNING_OUTCOMES"
	ContentKeyConcepts        ContentType = "KEY_CONCEPTS"
	ContentReflectionQs       ContentType = "REFLECTION_QUESTIONS"
	ContentDiscussionPrompts  ContentType = "DISCUSSION_PROMPTS"
	ContentSummary            ContentType = "SUMMARY"
	ContentCheckpoint         ContentType = "CHECKPOINT"
)

// ValidContentTypes is the canonical set of accepted content type strings
// for authoring and import. Unknown strings remain renderable at view
// time; resolution degrades to a generic resource presentation.
var ValidContentTypes = map[string]bool{
	"VIDEO": true, "IMAGE": true, "TEXT": true, "LINK": true,
	"3D_MODEL": true, "FLASHCARD": true, "INTERACTIVE_VIDEO": true,
	"INTERACTIVE_BOOK": true, "QUIZ": true, "ASSIGNMENT": true,
	"LEARNING_ACTIVITIES": true, "LEARNING_OUTCOMES": true,
	"KEY_CONCEPTS": true, "REFLECTION_QUESTIONS": true,
	"DISCUSSION_PROMPTS": true, "SUMMARY": true, "CHECKPOINT": true,
}

type LessonStatus string

const (
	LessonDraft     LessonStatus = "draft"
	LessonPublished LessonStatus = "published"
	LessonArchived  LessonStatus = "archived"
)

// CheckpointKind distinguishes graded from open-ended checkpoints.
type CheckpointKind string

const (
	CheckpointQuiz       CheckpointKind = "QUIZ"
	CheckpointReflection CheckpointKind = "REFLECTION"
)
