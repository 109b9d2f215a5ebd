package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	"github.com/mauv0809/fantasy-duels/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. Without a token every message is
// treated as a dry run.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	var api slackClient
	if token != "" {
		api = slack.New(token)
	}
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.api == nil {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendPairings(gameweek int, cards []league.DuelCard, dryRun bool) error {
	_, _, err := s.sendMessage(formatPairings(gameweek, cards), dryRun)
	return err
}

func (s *Notifier) SendDuelResults(gameweek int, cards []league.DuelCard, dryRun bool) error {
	_, _, err := s.sendMessage(formatDuelResults(gameweek, cards), dryRun)
	return err
}

func (s *Notifier) SendStandings(rows []league.Standing, dryRun bool) error {
	_, _, err := s.sendMessage(formatStandings(rows), dryRun)
	return err
}

// FormatStandingsResponse formats the league table for a slash command response.
func (s *Notifier) FormatStandingsResponse(rows []league.Standing) (any, error) {
	return formatStandings(rows), nil
}

// FormatDuelsResponse formats one gameweek of duels for a slash command response.
func (s *Notifier) FormatDuelsResponse(gameweek int, cards []league.DuelCard) (any, error) {
	return formatDuelResults(gameweek, cards), nil
}

// FormatDuelStandingsResponse formats the duel league for a slash command response.
func (s *Notifier) FormatDuelStandingsResponse(rows []league.DuelRecord) (any, error) {
	return formatDuelStandings(rows), nil
}

func header(text string) slack.Block {
	return slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", text, true, false))
}

func section(text string) slack.Block {
	return slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil)
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

// formatPairings announces a freshly generated gameweek.
func formatPairings(gameweek int, cards []league.DuelCard) slack.Message {
	blocks := []slack.Block{header(fmt.Sprintf("⚔️ Duels for J%d ⚔️", gameweek))}
	if len(cards) == 0 {
		blocks = append(blocks, section("No duels this week."))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	var byes []string
	for _, c := range cards {
		if c.Away == nil {
			byes = append(byes, c.Home.Name)
			continue
		}
		lines = append(lines, fmt.Sprintf("• *%s* vs *%s*", c.Home.Name, c.Away.Name))
	}
	if len(lines) > 0 {
		blocks = append(blocks, section(strings.Join(lines, "\n")))
	}
	if len(byes) > 0 {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", "😴 Bye: "+strings.Join(byes, ", "), true, false)))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatDuelResults shows the live or final score of each duel.
func formatDuelResults(gameweek int, cards []league.DuelCard) slack.Message {
	blocks := []slack.Block{header(fmt.Sprintf("⚔️ Duel results J%d ⚔️", gameweek))}
	if len(cards) == 0 {
		blocks = append(blocks, section("No duels found for this gameweek."))
		return slack.NewBlockMessage(blocks...)
	}

	for _, c := range cards {
		if c.Away == nil {
			blocks = append(blocks, section(fmt.Sprintf("😴 *%s* rests this week (%d pts)", c.Home.Name, c.Home.Points)))
			continue
		}
		var text string
		switch c.Outcome {
		case league.OutcomePending:
			text = fmt.Sprintf("⏳ *%s* vs *%s*: not played yet", c.Home.Name, c.Away.Name)
		case league.OutcomeDraw:
			text = fmt.Sprintf("🤝 *%s* %d - %d *%s*: draw", c.Home.Name, c.Home.Points, c.Away.Points, c.Away.Name)
		default:
			winner := c.Home.Name
			if c.WinnerID != nil && *c.WinnerID == c.Away.TeamID {
				winner = c.Away.Name
			}
			text = fmt.Sprintf("🏆 *%s* %d - %d *%s*: %s wins by %d",
				c.Home.Name, c.Home.Points, c.Away.Points, c.Away.Name, winner, c.Margin)
		}
		blocks = append(blocks, section(text))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates a Slack message to display the league table.
func formatStandings(rows []league.Standing) slack.Message {
	blocks := []slack.Block{header("🏆 League Standings 🏆")}
	if len(rows) == 0 {
		blocks = append(blocks, section("No teams yet."))
		return slack.NewBlockMessage(blocks...)
	}

	for i, row := range rows {
		rank := i + 1
		text := fmt.Sprintf("%d. %s *%s*\n> %d pts | avg %.2f | %d matchdays",
			rank, medal(rank), row.Team.Name, row.TotalPoints, row.Average, row.RoundsPlayed)
		if row.IsInactive {
			text += " | 💤 inactive"
		}
		blocks = append(blocks, section(text))
	}
	return slack.NewBlockMessage(blocks...)
}

// formatDuelStandings creates a Slack message to display the duel league.
func formatDuelStandings(rows []league.DuelRecord) slack.Message {
	blocks := []slack.Block{header("⚔️ Duel League ⚔️")}
	if len(rows) == 0 {
		blocks = append(blocks, section("No duels played yet."))
		return slack.NewBlockMessage(blocks...)
	}

	for i, row := range rows {
		rank := i + 1
		text := fmt.Sprintf("%d. %s *%s*\n> %d pts | %dW %dD %dL",
			rank, medal(rank), row.Team.Name, row.Points, row.Wins, row.Draws, row.Losses)
		if row.LostLast {
			text += " | 📉 lost last duel"
		}
		blocks = append(blocks, section(text))
	}
	return slack.NewBlockMessage(blocks...)
}
