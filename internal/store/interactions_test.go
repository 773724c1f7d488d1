package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyhive/internal/models"
	"storyhive/internal/store"
)

func TestLikeCounterLifecycle(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")
	c := newContent(s, u.ID, "serial")

	like := models.Interaction{
		UserID:          u.ID,
		ContentID:       &c.ID,
		InteractionType: models.InteractionLike,
	}

	created, isNew := s.CreateInteraction(like)
	require.True(t, isNew)
	got, _ := s.GetContent(c.ID)
	assert.Equal(t, 1, got.LikeCount)

	// Same tuple again: existing record comes back, counter untouched.
	dup, isNew := s.CreateInteraction(like)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, dup.ID)
	got, _ = s.GetContent(c.ID)
	assert.Equal(t, 1, got.LikeCount)

	require.True(t, s.DeleteInteraction(created.ID))
	got, _ = s.GetContent(c.ID)
	assert.Equal(t, 0, got.LikeCount)

	// Deleting again is a no-op; the counter never goes negative.
	assert.False(t, s.DeleteInteraction(created.ID))
	got, _ = s.GetContent(c.ID)
	assert.Equal(t, 0, got.LikeCount)
}

func TestViewCounterIncrementsButNeverDecrements(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")
	c := newContent(s, u.ID, "serial")

	view, isNew := s.CreateInteraction(models.Interaction{
		UserID:          u.ID,
		ContentID:       &c.ID,
		InteractionType: models.InteractionView,
	})
	require.True(t, isNew)
	got, _ := s.GetContent(c.ID)
	assert.Equal(t, 1, got.ViewCount)

	require.True(t, s.DeleteInteraction(view.ID))
	got, _ = s.GetContent(c.ID)
	assert.Equal(t, 1, got.ViewCount)
}

func TestEpisodeCounters(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")
	c := newContent(s, u.ID, "serial")
	e := newEpisode(s, c.ID, 1, "pilot")

	_, isNew := s.CreateInteraction(models.Interaction{
		UserID:          u.ID,
		EpisodeID:       &e.ID,
		InteractionType: models.InteractionLike,
	})
	require.True(t, isNew)

	got, _ := s.GetEpisode(e.ID)
	assert.Equal(t, 1, got.LikeCount)
	// Content counters are untouched by an episode-only like.
	gc, _ := s.GetContent(c.ID)
	assert.Equal(t, 0, gc.LikeCount)
}

func TestContentTakesPrecedenceWhenBothTargetsSet(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")
	c := newContent(s, u.ID, "serial")
	e := newEpisode(s, c.ID, 1, "pilot")

	_, isNew := s.CreateInteraction(models.Interaction{
		UserID:          u.ID,
		ContentID:       &c.ID,
		EpisodeID:       &e.ID,
		InteractionType: models.InteractionLike,
	})
	require.True(t, isNew)

	gc, _ := s.GetContent(c.ID)
	ge, _ := s.GetEpisode(e.ID)
	assert.Equal(t, 1, gc.LikeCount)
	assert.Equal(t, 0, ge.LikeCount)
}

func TestBookmarkDoesNotTouchCounters(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")
	c := newContent(s, u.ID, "serial")

	_, isNew := s.CreateInteraction(models.Interaction{
		UserID:          u.ID,
		ContentID:       &c.ID,
		InteractionType: models.InteractionBookmark,
	})
	require.True(t, isNew)

	got, _ := s.GetContent(c.ID)
	assert.Equal(t, 0, got.LikeCount)
	assert.Equal(t, 0, got.ViewCount)
}

func TestDedupDistinguishesTypeAndTarget(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")
	c := newContent(s, u.ID, "serial")

	_, isNew := s.CreateInteraction(models.Interaction{UserID: u.ID, ContentID: &c.ID, InteractionType: models.InteractionLike})
	require.True(t, isNew)

	// Different type, same target: a new record.
	_, isNew = s.CreateInteraction(models.Interaction{UserID: u.ID, ContentID: &c.ID, InteractionType: models.InteractionBookmark})
	assert.True(t, isNew)

	// Different user, same tuple otherwise: a new record.
	other := newUser(s, "rin", "rin@example.com")
	_, isNew = s.CreateInteraction(models.Interaction{UserID: other.ID, ContentID: &c.ID, InteractionType: models.InteractionLike})
	assert.True(t, isNew)
}

func TestInteractionCounts(t *testing.T) {
	s := store.New()
	u := newUser(s, "mika", "mika@example.com")
	other := newUser(s, "rin", "rin@example.com")
	c := newContent(s, u.ID, "serial")
	e := newEpisode(s, c.ID, 1, "pilot")

	s.CreateInteraction(models.Interaction{UserID: u.ID, ContentID: &c.ID, InteractionType: models.InteractionLike})
	s.CreateInteraction(models.Interaction{UserID: other.ID, ContentID: &c.ID, InteractionType: models.InteractionLike})
	s.CreateInteraction(models.Interaction{UserID: u.ID, ContentID: &c.ID, InteractionType: models.InteractionBookmark})
	s.CreateInteraction(models.Interaction{UserID: u.ID, EpisodeID: &e.ID, InteractionType: models.InteractionView})

	assert.Equal(t, 2, s.InteractionCountByContent(c.ID, models.InteractionLike))
	assert.Equal(t, 1, s.InteractionCountByContent(c.ID, models.InteractionBookmark))
	assert.Equal(t, 0, s.InteractionCountByContent(c.ID, models.InteractionView))
	assert.Equal(t, 1, s.InteractionCountByEpisode(e.ID, models.InteractionView))
}
