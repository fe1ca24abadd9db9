package csvintake_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"grouporders/internal/adapters/in/csvintake"
	"grouporders/internal/core/application/usecases/commands"
	"grouporders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter records submitted commands and answers per user name.
type fakeSubmitter struct {
	submitted []commands.SubmitOrderCommand
	responses map[string]error
}

func (f *fakeSubmitter) Handle(_ context.Context, cmd commands.SubmitOrderCommand) error {
	if err, ok := f.responses[cmd.UserName()]; ok {
		return err
	}
	f.submitted = append(f.submitted, cmd)
	return nil
}

func newLoader(submitter *fakeSubmitter) *csvintake.Loader {
	return csvintake.NewLoader(submitter, slog.New(slog.DiscardHandler))
}

func TestLoader_Load(t *testing.T) {
	t.Run("should submit every well-formed record", func(t *testing.T) {
		input := strings.Join([]string{
			"Alice,Restauracja A,Restauracja B,Zurek",
			"Bob,Restauracja B,Restauracja C,Rosol",
		}, "\n")
		submitter := &fakeSubmitter{}

		summary, err := newLoader(submitter).Load(t.Context(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, csvintake.Summary{Submitted: 2}, summary)
		require.Len(t, submitter.submitted, 2)
		assert.Equal(t, "Alice", submitter.submitted[0].UserName())
		assert.Equal(t, "Zurek", submitter.submitted[0].MenuItemName())
		assert.Equal(t, "Bob", submitter.submitted[1].UserName())
	})

	t.Run("should skip record with wrong field count and continue", func(t *testing.T) {
		input := strings.Join([]string{
			"Alice,Restauracja A,Restauracja B,Zurek",
			"Bob,Restauracja B,Rosol",
			"Carol,Restauracja C,Restauracja A,Bigos",
		}, "\n")
		submitter := &fakeSubmitter{}

		summary, err := newLoader(submitter).Load(t.Context(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, csvintake.Summary{Submitted: 2, Malformed: 1}, summary)
		require.Len(t, submitter.submitted, 2)
		assert.Equal(t, "Carol", submitter.submitted[1].UserName())
	})

	t.Run("should submit record with blank user and alternate fields", func(t *testing.T) {
		input := ",Restauracja A,,Zurek"
		submitter := &fakeSubmitter{}

		summary, err := newLoader(submitter).Load(t.Context(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, csvintake.Summary{Submitted: 1}, summary)
		require.Len(t, submitter.submitted, 1)
		assert.Empty(t, submitter.submitted[0].UserName())
		assert.Empty(t, submitter.submitted[0].AlternateRestaurantName())
		assert.Equal(t, "Zurek", submitter.submitted[0].MenuItemName())
	})

	t.Run("should count record with blank preferred restaurant as malformed", func(t *testing.T) {
		input := "Alice,,Restauracja B,Zurek"
		submitter := &fakeSubmitter{}

		summary, err := newLoader(submitter).Load(t.Context(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, csvintake.Summary{Malformed: 1}, summary)
		assert.Empty(t, submitter.submitted)
	})

	t.Run("should skip record when a name cannot be resolved", func(t *testing.T) {
		input := strings.Join([]string{
			"Alice,Nonexistent,Restauracja B,Zurek",
			"Bob,Restauracja B,Restauracja C,Rosol",
		}, "\n")
		submitter := &fakeSubmitter{
			responses: map[string]error{
				"Alice": errs.NewObjectNotFoundError("name", "Nonexistent"),
			},
		}

		summary, err := newLoader(submitter).Load(t.Context(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, csvintake.Summary{Submitted: 1, Skipped: 1}, summary)
		require.Len(t, submitter.submitted, 1)
		assert.Equal(t, "Bob", submitter.submitted[0].UserName())
	})

	t.Run("should abort on storage failure", func(t *testing.T) {
		input := strings.Join([]string{
			"Alice,Restauracja A,Restauracja B,Zurek",
			"Bob,Restauracja B,Restauracja C,Rosol",
		}, "\n")
		storageErr := errors.New("connection lost")
		submitter := &fakeSubmitter{
			responses: map[string]error{"Bob": storageErr},
		}

		summary, err := newLoader(submitter).Load(t.Context(), strings.NewReader(input))

		require.ErrorIs(t, err, storageErr)
		assert.Equal(t, 1, summary.Submitted)
	})

	t.Run("should handle empty input", func(t *testing.T) {
		submitter := &fakeSubmitter{}

		summary, err := newLoader(submitter).Load(t.Context(), strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, csvintake.Summary{}, summary)
	})
}

func TestLoader_LoadFile(t *testing.T) {
	t.Run("should fail for missing file", func(t *testing.T) {
		submitter := &fakeSubmitter{}

		_, err := newLoader(submitter).LoadFile(t.Context(), "does-not-exist.csv")

		require.Error(t, err)
	})
}
