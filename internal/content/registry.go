// Package content maps content types to their renderer family and
// completion policy. Resolution is total: unrecognized types degrade to
// a generic resource presentation instead of failing.
package content

import "github.com/darasahq/darasa/internal/domain"

// RendererKind is the family of interaction widget used for a content item.
type RendererKind string

const (
	RendererVideo            RendererKind = "video"
	RendererImage            RendererKind = "image"
	RendererModel3D          RendererKind = "model_3d"
	RendererFlashcards       RendererKind = "flashcards"
	RendererInteractiveVideo RendererKind = "interactive_video"
	RendererBook             RendererKind = "book"
	RendererTextSection      RendererKind = "text_section"
	RendererExternalFlow     RendererKind = "external_flow"
	RendererCheckpoint       RendererKind = "checkpoint"
	RendererResource         RendererKind = "resource"
)

// CompletionPolicy says how a content item gets marked complete.
type CompletionPolicy string

const (
	// PolicyManual completes only on an explicit learner action.
	PolicyManual CompletionPolicy = "manual"
	// PolicyRendererSignal completes when the renderer reports the
	// interaction finished (all cards reviewed, last page turned).
	PolicyRendererSignal CompletionPolicy = "renderer_signal"
	// PolicyExternalFlow hands off to a separate full-screen flow;
	// completion is reported back out-of-band.
	PolicyExternalFlow CompletionPolicy = "external_flow"
	// PolicyCheckpoint completes on a checkpoint evaluation verdict.
	PolicyCheckpoint CompletionPolicy = "checkpoint"
)

// RenderSpec is the resolved renderer/policy pair for a content type.
type RenderSpec struct {
	Renderer RendererKind
	Policy   CompletionPolicy
}

// Resolve returns the render spec for a content type. The switch covers
// the closed set of known types; anything else falls back to the generic
// resource renderer with manual completion, so stale or future content
// types never break a lesson session.
func Resolve(ct domain.ContentType) RenderSpec {
	switch ct {
	case domain.ContentVideo:
		return RenderSpec{Renderer: RendererVideo, Policy: PolicyManual}
	case domain.ContentImage:
		return RenderSpec{Renderer: RendererImage, Policy: PolicyManual}
	case domain.ContentModel3D:
		return RenderSpec{Renderer: RendererModel3D, Policy: PolicyManual}
	case domain.ContentFlashcard:
		return RenderSpec{Renderer: RendererFlashcards, Policy: PolicyRendererSignal}
	case domain.ContentInteractiveVideo:
		return RenderSpec{Renderer: RendererInteractiveVideo, Policy: PolicyRendererSignal}
	case domain.ContentInteractiveBook:
		return RenderSpec{Renderer: RendererBook, Policy: PolicyRendererSignal}
	case domain.ContentQuiz, domain.ContentAssignment:
		return RenderSpec{Renderer: RendererExternalFlow, Policy: PolicyExternalFlow}
	case domain.ContentText,
		domain.ContentLearningActivities,
		domain.ContentLearningOutcomes,
		domain.ContentKeyConcepts,
		domain.ContentReflectionQs,
		domain.ContentDiscussionPrompts,
		domain.ContentSummary:
		return RenderSpec{Renderer: RendererTextSection, Policy: PolicyManual}
	case domain.ContentCheckpoint:
		return RenderSpec{Renderer: RendererCheckpoint, Policy: PolicyCheckpoint}
	case domain.ContentLink:
		return RenderSpec{Renderer: RendererResource, Policy: PolicyManual}
	default:
		return RenderSpec{Renderer: RendererResource, Policy: PolicyManual}
	}
}
