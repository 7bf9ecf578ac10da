package chess_test

import (
	"testing"

	corenchess "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"

	"chesscore/internal/chess"
)

// fullFEN appends placeholder halfmove/fullmove counters that this
// engine does not model but the oracle libraries require.
func fullFEN(fen string) string { return fen + " 0 1" }

// TestCrossValidateMoveCountsAgainstDragontoothmg checks this package's
// legal move count against dragontoothmg's independent move generator
// for a table of positions, perft-style but depth one.
func TestCrossValidateMoveCountsAgainstDragontoothmg(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq -",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6",
	}
	for _, f := range fens {
		t.Run(f, func(t *testing.T) {
			ours, ok := chess.FENDecode(f)
			if !ok {
				t.Fatalf("our decoder rejected %q", f)
			}

			var oracle dragontoothmg.Board
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Fatalf("dragontoothmg rejected %q: %v", f, r)
					}
				}()
				oracle = dragontoothmg.ParseFen(fullFEN(f))
			}()

			ourCount := len(chess.AllMoves(ours))
			oracleCount := len(oracle.GenerateLegalMoves())
			if ourCount != oracleCount {
				t.Errorf("move count mismatch for %q: ours=%d dragontoothmg=%d", f, ourCount, oracleCount)
			}
		})
	}
}

// TestCrossValidateAgainstCorentingsChess cross-checks the starting
// position's move count and FEN rendering against a second, fully
// independent chess library.
func TestCrossValidateAgainstCorentingsChess(t *testing.T) {
	start := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

	ours, ok := chess.FENDecode(start)
	if !ok {
		t.Fatalf("our decoder rejected %q", start)
	}

	applyFEN, err := corenchess.FEN(fullFEN(start))
	if err != nil {
		t.Fatalf("corentings/chess rejected %q: %v", start, err)
	}
	g := corenchess.NewGame(applyFEN)

	if ourCount, oracleCount := len(chess.AllMoves(ours)), len(g.ValidMoves()); ourCount != oracleCount {
		t.Errorf("move count mismatch: ours=%d corentings/chess=%d", ourCount, oracleCount)
	}

	if ourFEN, oracleFEN := chess.FENEncode(ours), g.FEN(); oracleFEN != fullFEN(ourFEN) {
		t.Errorf("FEN mismatch: ours=%q corentings/chess=%q", ourFEN, oracleFEN)
	}
}
