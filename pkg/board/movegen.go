package board

// PseudoLegalMoves returns the candidate moves for the side to move. The
// moves obey piece-movement rules, blocked paths and castling preconditions,
// but may leave the own king in check. Legality is the Move filter's job.
func (p *Position) PseudoLegalMoves() []Move {
	var ret []Move
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		c, piece, ok := p.Square(sq)
		if !ok || c != p.turn {
			continue
		}

		switch piece {
		case Pawn:
			ret = p.pawnMoves(sq, ret)
		case Knight:
			ret = p.stepMoves(sq, KnightDirections, ret)
		case Bishop:
			ret = p.sliderMoves(sq, BishopDirections, ret)
		case Rook:
			ret = p.sliderMoves(sq, RookDirections, ret)
		case Queen:
			ret = p.sliderMoves(sq, QueenDirections, ret)
		case King:
			ret = p.kingMoves(sq, ret)
		}
	}
	return ret
}

func (p *Position) pawnMoves(from Square, ret []Move) []Move {
	dir := p.turn.PawnDirection()
	last := p.turn.LastRank()

	if to, ok := from.Offset(0, dir); ok && p.IsEmpty(to) {
		if to.Rank() == last {
			ret = promotionMoves(from, to, ret)
		} else {
			ret = append(ret, Move{From: from, To: to})

			if from.Rank() == p.turn.StartRank() {
				if to2, ok := from.Offset(0, 2*dir); ok && p.IsEmpty(to2) {
					ret = append(ret, Move{From: from, To: to2})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if c, _, ok := p.Square(to); ok && c != p.turn {
			if to.Rank() == last {
				ret = promotionMoves(from, to, ret)
			} else {
				ret = append(ret, Move{From: from, To: to})
			}
		}
	}

	if ep, ok := p.EnPassant(); ok {
		df := ep.File().V() - from.File().V()
		if ep.Rank().V() == from.Rank().V()+dir && (df == 1 || df == -1) {
			ret = append(ret, Move{Type: EnPassant, From: from, To: ep})
		}
	}
	return ret
}

func (p *Position) stepMoves(from Square, dirs []Direction, ret []Move) []Move {
	for _, d := range dirs {
		to, ok := from.Offset(d.File, d.Rank)
		if !ok {
			continue
		}
		if c, _, ok := p.Square(to); !ok || c != p.turn {
			ret = append(ret, Move{From: from, To: to})
		}
	}
	return ret
}

func (p *Position) sliderMoves(from Square, dirs []Direction, ret []Move) []Move {
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.Offset(d.File, d.Rank)
			if !ok {
				break
			}
			if c, _, ok := p.Square(to); ok {
				if c != p.turn {
					ret = append(ret, Move{From: from, To: to})
				}
				break
			}
			ret = append(ret, Move{From: from, To: to})
			cur = to
		}
	}
	return ret
}

func (p *Position) kingMoves(from Square, ret []Move) []Move {
	ret = p.stepMoves(from, KingDirections, ret)

	home := p.turn.HomeRank()
	if from != NewSquare(FileE, home) {
		return ret
	}

	if p.castling.IsAllowed(KingSideRight(p.turn)) &&
		p.IsEmpty(NewSquare(FileF, home)) &&
		p.IsEmpty(NewSquare(FileG, home)) &&
		p.holds(NewSquare(FileH, home), p.turn, Rook) {
		ret = append(ret, Move{Type: KingSideCastle, From: from, To: NewSquare(FileG, home)})
	}
	if p.castling.IsAllowed(QueenSideRight(p.turn)) &&
		p.IsEmpty(NewSquare(FileB, home)) &&
		p.IsEmpty(NewSquare(FileC, home)) &&
		p.IsEmpty(NewSquare(FileD, home)) &&
		p.holds(NewSquare(FileA, home), p.turn, Rook) {
		ret = append(ret, Move{Type: QueenSideCastle, From: from, To: NewSquare(FileC, home)})
	}
	return ret
}

// promotionMoves emits the four promotion moves for a pawn reaching the
// last rank.
func promotionMoves(from, to Square, ret []Move) []Move {
	for _, promo := range PromotionPieces {
		ret = append(ret, Move{Type: Promotion, From: from, To: to, Promotion: promo})
	}
	return ret
}
