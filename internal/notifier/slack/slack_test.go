package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func ptr(id league.TeamID) *league.TeamID { return &id }

func sampleCards() []league.DuelCard {
	return []league.DuelCard{
		{
			Gameweek: 3,
			Home:     league.DuelSide{TeamID: 1, Name: "Team Alpha", Points: 70},
			Away:     &league.DuelSide{TeamID: 2, Name: "Team Beta", Points: 55},
			Outcome:  league.OutcomeWin,
			Margin:   15,
			WinnerID: ptr(1),
		},
		{
			Gameweek: 3,
			Home:     league.DuelSide{TeamID: 3, Name: "Team Gamma", Points: 40},
			Away:     &league.DuelSide{TeamID: 4, Name: "Team Delta", Points: 40},
			Outcome:  league.OutcomeDraw,
		},
		{
			Gameweek: 3,
			Home:     league.DuelSide{TeamID: 5, Name: "Team Epsilon", Points: 33},
			Outcome:  league.OutcomeBye,
		},
	}
}

func sectionText(t *testing.T, b slackapi.Block) string {
	t.Helper()
	s, ok := b.(*slackapi.SectionBlock)
	require.True(t, ok, "expected a section block, got %T", b)
	return s.Text.Text
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_NoTokenBehavesAsDryRun(t *testing.T) {
	metrics := metrics.NewMock()
	notifier := NewNotifier("", "C123", metrics)

	require.NoError(t, notifier.SendStandings(nil, false))
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendPairings(3, sampleCards(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendDuelResults(3, sampleCards(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestFormatPairings(t *testing.T) {
	msg := formatPairings(3, sampleCards())
	require.Len(t, msg.Blocks.BlockSet, 3)

	h, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, h.Text.Text, "J3")

	text := sectionText(t, msg.Blocks.BlockSet[1])
	assert.Contains(t, text, "*Team Alpha* vs *Team Beta*")
	assert.Contains(t, text, "*Team Gamma* vs *Team Delta*")

	ctxBlock, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, ctxBlock.ContextElements.Elements, 1)
	bye, ok := ctxBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Contains(t, bye.Text, "Team Epsilon")
}

func TestFormatDuelResults(t *testing.T) {
	cards := append(sampleCards(), league.DuelCard{
		Home:    league.DuelSide{TeamID: 6, Name: "Team Zeta"},
		Away:    &league.DuelSide{TeamID: 7, Name: "Team Eta"},
		Outcome: league.OutcomePending,
	})
	msg := formatDuelResults(3, cards)
	require.Len(t, msg.Blocks.BlockSet, 5)

	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[1]), "Team Alpha wins by 15")
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[2]), "40 - 40")
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[2]), "draw")
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[3]), "rests this week")
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[4]), "not played yet")

	empty := formatDuelResults(9, nil)
	require.Len(t, empty.Blocks.BlockSet, 2)
	assert.Contains(t, sectionText(t, empty.Blocks.BlockSet[1]), "No duels")
}

func TestFormatStandings(t *testing.T) {
	rows := []league.Standing{
		{Team: league.Team{ID: 4, Name: "Team Delta"}, TotalPoints: 205, Average: 68.33, RoundsPlayed: 3},
		{Team: league.Team{ID: 3, Name: "Team Gamma"}, TotalPoints: 0, RoundsPlayed: 3, IsInactive: true},
	}
	msg := formatStandings(rows)
	require.Len(t, msg.Blocks.BlockSet, 3)

	first := sectionText(t, msg.Blocks.BlockSet[1])
	assert.Contains(t, first, "1. 🥇 *Team Delta*")
	assert.Contains(t, first, "205 pts | avg 68.33")
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[2]), "inactive")
}

func TestFormatDuelStandings(t *testing.T) {
	rows := []league.DuelRecord{
		{Team: league.Team{Name: "Team Delta"}, Points: 6, Wins: 2, Losses: 1},
		{Team: league.Team{Name: "Team Beta"}, Points: 4, Wins: 1, Draws: 1, Losses: 1, LostLast: true},
	}
	resp, err := (&Notifier{}).FormatDuelStandingsResponse(rows)
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 3)
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[1]), "6 pts | 2W 0D 1L")
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[2]), "lost last duel")
}
