package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/isaacazuelos/puzzle-a-day/piece"
)

func TestPieceFromArg(t *testing.T) {
	is := is.New(t)

	for _, p := range piece.All {
		got, err := pieceFromArg(p.String())
		is.NoErr(err)
		is.Equal(got, p)
	}

	// The non-ASCII glyphs can be spelled out.
	got, err := pieceFromArg("gamma")
	is.NoErr(err)
	is.Equal(got, piece.Gamma)
	got, err = pieceFromArg("Lamedh")
	is.NoErr(err)
	is.Equal(got, piece.Lamedh)

	_, err = pieceFromArg("x")
	is.True(err != nil)
	_, err = pieceFromArg("")
	is.True(err != nil)
}
