// Package fen contains utilities for reading and writing positions in FEN
// notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/eloi/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new position from a FEN description. The placement field
// is required; missing trailing fields default to white to move, no castling
// and no en passant. The halfmove and fullmove counters are validated when
// present, but otherwise ignored.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) == 0 || len(parts) > 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement, from white's perspective: each rank is described
	// starting with rank 8 and ending with rank 1, file a through file h.
	// Digits 1-8 note runs of blank squares.

	var pieces []board.Placement

	rank := board.Rank8
	file := 0
	for _, r := range []rune(parts[0]) {
		switch {
		case r == '/':
			if file != int(board.NumFiles) || rank == board.Rank1 {
				return nil, fmt.Errorf("invalid placement in FEN: '%v'", fen)
			}
			rank--
			file = 0

		case '1' <= r && r <= '8':
			file += int(r - '0')

		case unicode.IsLetter(r):
			color, piece, ok := parsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece '%c' in FEN: '%v'", r, fen)
			}
			if file >= int(board.NumFiles) {
				return nil, fmt.Errorf("invalid placement in FEN: '%v'", fen)
			}
			pieces = append(pieces, board.Placement{Square: board.NewSquare(board.File(file), rank), Color: color, Piece: piece})
			file++

		default:
			return nil, fmt.Errorf("invalid character '%c' in FEN: '%v'", r, fen)
		}

		if file > int(board.NumFiles) {
			return nil, fmt.Errorf("invalid placement in FEN: '%v'", fen)
		}
	}
	if rank != board.Rank1 || file != int(board.NumFiles) {
		return nil, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
	}

	// (2) Active color: "w" means white moves next, "b" means black.

	active := board.White
	if len(parts) > 1 {
		c, ok := parseColor(parts[1])
		if !ok {
			return nil, fmt.Errorf("invalid active color in FEN: '%v'", fen)
		}
		active = c
	}

	// (3) Castling availability: a subset of "KQkq", or "-".

	var castling board.Castling
	if len(parts) > 2 {
		c, ok := parseCastling(parts[2])
		if !ok {
			return nil, fmt.Errorf("invalid castling in FEN: '%v'", fen)
		}
		castling = c
	}

	// (4) En-passant target square in algebraic notation, or "-". If a pawn
	// has just made a double push, this is the square "behind" the pawn.

	var ep board.Square
	if len(parts) > 3 && parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: '%v'", fen)
		}
		ep = sq
	}

	// (5)+(6) Halfmove clock and fullmove number. Tracked draw conditions
	// and move numbering are out of scope, so the values are unused.

	for i := 4; i < len(parts); i++ {
		if n, err := strconv.Atoi(parts[i]); err != nil || n < 0 {
			return nil, fmt.Errorf("invalid move counter in FEN: '%v'", fen)
		}
	}

	return board.NewPosition(pieces, active, castling, ep)
}

// Encode encodes the position in FEN notation. The halfmove and fullmove
// counters are not tracked and render as "0 1".
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := board.NumRanks; r > 0; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			color, piece, ok := pos.Square(board.NewSquare(f, r-1))
			if !ok {
				blanks++
				continue
			}

			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(color, piece))
		}

		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 1 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v 0 1", sb.String(), pos.Turn(), pos.Castling(), ep)
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	piece, ok := board.ParsePiece(unicode.ToLower(r))
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, piece, true
	}
	return board.Black, piece, true
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
