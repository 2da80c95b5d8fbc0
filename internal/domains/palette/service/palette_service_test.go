package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	p "palette-backend/internal/domains/palette"
	"palette-backend/internal/infrastructure/inference"
	"palette-backend/internal/seasons"
)

// ---- fakes ----

type fakeRepo struct {
	palettes map[int64]*p.Palette
	emails   map[int64][]string
	nextID   int64
	failNext error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		palettes: make(map[int64]*p.Palette),
		emails:   make(map[int64][]string),
		nextID:   1,
	}
}

func (r *fakeRepo) Create(ctx context.Context, pal *p.Palette) (int64, error) {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return 0, err
	}
	id := r.nextID
	r.nextID++

	stored := *pal
	stored.ID = id
	stored.CreatedAt = time.Now()
	r.palettes[id] = &stored
	return id, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*p.Palette, error) {
	pal, ok := r.palettes[id]
	if !ok {
		return nil, p.ErrPaletteNotFound
	}
	return pal, nil
}

func (r *fakeRepo) GetLatest(ctx context.Context) (*p.Palette, error) {
	var latest *p.Palette
	for _, pal := range r.palettes {
		if latest == nil || pal.ID > latest.ID {
			latest = pal
		}
	}
	if latest == nil {
		return nil, p.ErrPaletteNotFound
	}
	return latest, nil
}

func (r *fakeRepo) SaveEmail(ctx context.Context, paletteID int64, email string) error {
	if _, ok := r.palettes[paletteID]; !ok {
		return p.ErrPaletteNotFound
	}
	r.emails[paletteID] = append(r.emails[paletteID], email)
	return nil
}

type fakeClassifier struct {
	result *inference.Result
	err    error
}

func (c *fakeClassifier) Classify(ctx context.Context, photoURL string) (*inference.Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

type fakeEnqueuer struct {
	enqueued []int64
	err      error
}

func (e *fakeEnqueuer) EnqueuePaletteEmail(ctx context.Context, paletteID int64, email string) error {
	if e.err != nil {
		return e.err
	}
	e.enqueued = append(e.enqueued, paletteID)
	return nil
}

func lightSpringResult() *inference.Result {
	return &inference.Result{
		Season:    seasons.Spring,
		SubSeason: seasons.LightSpring,
		Gender:    seasons.Female,
		RecommendedColors: []inference.RecommendedColor{
			{Name: "Coral", Hex: "#FF6F61", Reason: "Warms your golden undertones."},
			{Name: "Mint Green", Hex: "#98FB98", Reason: "Echoes your fresh lightness."},
			{Name: "Sky Blue", Hex: "#87CEEB", Reason: "Brightens your eyes."},
		},
	}
}

// ---- tests ----

func TestAnalyzeThenGetByID_Roundtrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPaletteService(repo, &fakeClassifier{result: lightSpringResult()}, nil, &fakeEnqueuer{})

	id, err := svc.Analyze(context.Background(), "https://cdn.example.com/photo.jpg")
	require.NoError(t, err)
	require.NotZero(t, id)

	view, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Spring", view.Season)
	assert.Equal(t, "Light Spring", view.SubSeason)
	assert.NotEmpty(t, view.Description)
	require.NotNil(t, view.Percentage)

	// The colours map holds only the 3 model-recommended colors
	require.Len(t, view.Colours, 3)
	coral, ok := view.Colours["#FF6F61"]
	require.True(t, ok)
	assert.Equal(t, "Coral", coral.Name)
	assert.Equal(t, "Warms your golden undertones.", coral.Reason)

	// The taxonomy swatch set is carried separately
	assert.NotEmpty(t, view.Palette)

	// Celebrity comes from the female reference template
	require.NotNil(t, view.Celebrity)
	assert.Equal(t, "Taylor Swift", view.Celebrity.Name)
	assert.Equal(t, "female", view.Celebrity.Gender)
}

func TestAnalyze_PersistsTaxonomyAndRecommendedColors(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPaletteService(repo, &fakeClassifier{result: lightSpringResult()}, nil, &fakeEnqueuer{})

	id, err := svc.Analyze(context.Background(), "https://cdn.example.com/photo.jpg")
	require.NoError(t, err)

	stored := repo.palettes[id]
	require.NotNil(t, stored)

	entry, found := seasons.Lookup(seasons.Spring, seasons.LightSpring)
	require.True(t, found)

	assert.Len(t, stored.TaxonomyColors(), len(entry.Colors))
	assert.Len(t, stored.RecommendedColors(), 3)

	// Description and rarity are copies of the reference entry
	require.NotNil(t, stored.Description)
	assert.Equal(t, entry.Description, *stored.Description)
	require.NotNil(t, stored.Percentage)
	assert.True(t, entry.Percentage.Equal(*stored.Percentage))

	// Taxonomy rows carry no reason; recommended rows keep theirs verbatim
	for _, c := range stored.TaxonomyColors() {
		assert.Nil(t, c.Reason)
	}
	for _, c := range stored.RecommendedColors() {
		require.NotNil(t, c.Reason)
		assert.NotEmpty(t, *c.Reason)
	}
}

func TestAnalyze_MaleCelebrityTemplate(t *testing.T) {
	result := lightSpringResult()
	result.Gender = seasons.Male

	repo := newFakeRepo()
	svc := NewPaletteService(repo, &fakeClassifier{result: result}, nil, &fakeEnqueuer{})

	id, err := svc.Analyze(context.Background(), "https://cdn.example.com/photo.jpg")
	require.NoError(t, err)

	view, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, view.Celebrity)
	assert.Equal(t, "Ryan Gosling", view.Celebrity.Name)
	assert.Equal(t, "male", view.Celebrity.Gender)
}

func TestAnalyze_ClassificationFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPaletteService(repo, &fakeClassifier{err: inference.ErrUpstream}, nil, &fakeEnqueuer{})

	_, err := svc.Analyze(context.Background(), "https://cdn.example.com/photo.jpg")
	assert.ErrorIs(t, err, p.ErrClassificationFailed)
	assert.Empty(t, repo.palettes, "nothing should be persisted on classification failure")
}

func TestAnalyze_RepositoryFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failNext = errors.New("connection reset")
	svc := NewPaletteService(repo, &fakeClassifier{result: lightSpringResult()}, nil, &fakeEnqueuer{})

	_, err := svc.Analyze(context.Background(), "https://cdn.example.com/photo.jpg")
	assert.Error(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewPaletteService(newFakeRepo(), &fakeClassifier{}, nil, &fakeEnqueuer{})

	_, err := svc.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, p.ErrPaletteNotFound)
}

func TestGetLatest(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPaletteService(repo, &fakeClassifier{result: lightSpringResult()}, nil, &fakeEnqueuer{})

	_, err := svc.GetLatest(context.Background())
	assert.ErrorIs(t, err, p.ErrPaletteNotFound)

	first, err := svc.Analyze(context.Background(), "https://cdn.example.com/a.jpg")
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), "https://cdn.example.com/b.jpg")
	require.NoError(t, err)
	require.Greater(t, second, first)

	view, err := svc.GetLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, view.ID)
}

func TestRequestEmail(t *testing.T) {
	repo := newFakeRepo()
	enqueuer := &fakeEnqueuer{}
	svc := NewPaletteService(repo, &fakeClassifier{result: lightSpringResult()}, nil, enqueuer)

	id, err := svc.Analyze(context.Background(), "https://cdn.example.com/photo.jpg")
	require.NoError(t, err)

	err = svc.RequestEmail(context.Background(), id, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"user@example.com"}, repo.emails[id])
	assert.Equal(t, []int64{id}, enqueuer.enqueued)
}

func TestRequestEmail_UnknownPalette(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	svc := NewPaletteService(newFakeRepo(), &fakeClassifier{}, nil, enqueuer)

	err := svc.RequestEmail(context.Background(), 42, "user@example.com")
	assert.ErrorIs(t, err, p.ErrPaletteNotFound)
	assert.Empty(t, enqueuer.enqueued, "nothing should be enqueued for unknown palettes")
}
