package discord

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const emptyGlyph = "⬜"

var (
	markGlyphs = map[string]string{
		string(entity.MarkX): "❌",
		string(entity.MarkO): "⭕",
	}

	// cellEmoji - reaction controls, index is the board cell.
	cellEmoji = [entity.BoardSize]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}
)

// CellFromEmoji - maps a reaction back to the board cell it controls.
func CellFromEmoji(name string) (int, bool) {
	for cell, emoji := range cellEmoji {
		if emoji == name {
			return cell, true
		}
	}

	return 0, false
}

func mention(playerID string) string {
	return "<@" + playerID + ">"
}

func renderBoard(board [entity.BoardSize]string) string {
	var builder strings.Builder
	for i, cell := range board {
		glyph, ok := markGlyphs[cell]
		if !ok {
			glyph = emptyGlyph
		}
		builder.WriteString(glyph)

		if i%3 == 2 {
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// FormatPayload - message text for a session: header, board and status line.
func FormatPayload(payload *entity.RenderPayload) string {
	var builder strings.Builder

	x, o := payload.Players[0], payload.Players[1]
	fmt.Fprintf(&builder, "**Tic-Tac-Toe** %s %s vs %s %s\n\n",
		markGlyphs[string(entity.MarkX)], mention(x.ID), mention(o.ID), markGlyphs[string(entity.MarkO)])
	builder.WriteString(renderBoard(payload.Board))
	builder.WriteByte('\n')

	switch payload.Status {
	case entity.StatusInProgress:
		fmt.Fprintf(&builder, "Turn: %s", mention(payload.TurnPlayerID))
	case entity.StatusWon:
		fmt.Fprintf(&builder, "🏆 %s wins!", mention(payload.WinnerID))
	case entity.StatusDraw:
		builder.WriteString("🤝 It's a draw!")
	case entity.StatusExpired:
		builder.WriteString("⌛ Game ended due to inactivity.")
	case entity.StatusAborted:
		builder.WriteString("🚫 Game cancelled.")
	}

	for _, stats := range payload.Stats {
		builder.WriteByte('\n')
		builder.WriteString(formatStats(stats))
	}

	return builder.String()
}

func formatStats(stats entity.PlayerStats) string {
	return fmt.Sprintf("%s: %dW / %dL / %dD, %d pts, win rate %s%%",
		mention(stats.PlayerID), stats.Stats.Wins, stats.Stats.Losses, stats.Stats.Draws, stats.Stats.Points, stats.WinRate)
}

func formatLeaderboard(top []entity.PlayerStats) string {
	if len(top) == 0 {
		return "No games played yet."
	}

	var builder strings.Builder
	builder.WriteString("**Tic-Tac-Toe leaderboard**")
	for i, stats := range top {
		fmt.Fprintf(&builder, "\n%d. %s", i+1, formatStats(stats))
	}

	return builder.String()
}
