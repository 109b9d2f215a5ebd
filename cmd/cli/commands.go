package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/mauv0809/fantasy-duels/internal/http/handlers"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/matchmaking"
	"github.com/spf13/cobra"
)

var (
	gameweek int
	rule     string
	horizon  int
	dryRun   bool
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(duelsCmd)
	rootCmd.AddCommand(duelTableCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(projectionCmd)
	rootCmd.AddCommand(generateCmd)

	duelsCmd.Flags().IntVar(&gameweek, "gameweek", 0, "Gameweek to show (default: latest)")
	streaksCmd.Flags().StringVar(&rule, "rule", "", "Streak rule: trailing or per-round (default: server setting)")
	projectionCmd.Flags().IntVar(&horizon, "horizon", 0, "Number of matchdays to project (default: server setting)")
	generateCmd.Flags().IntVar(&gameweek, "gameweek", 0, "Gameweek to generate")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the pairings without storing them")
	_ = generateCmd.MarkFlagRequired("gameweek")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the persisted operation counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the league table",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows []league.Standing
		if err := fetchJSON("/standings", &rows); err != nil {
			return err
		}
		printStandings(os.Stdout, rows)
		return nil
	},
}

var duelsCmd = &cobra.Command{
	Use:   "duels",
	Short: "Show the duels of a gameweek",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/duels"
		if gameweek > 0 {
			endpoint += "?gameweek=" + strconv.Itoa(gameweek)
		}
		var res handlers.DuelsResponse
		if err := fetchJSON(endpoint, &res); err != nil {
			return err
		}
		printDuels(os.Stdout, res.Gameweek, res.Duels)
		return nil
	},
}

var duelTableCmd = &cobra.Command{
	Use:   "duel-table",
	Short: "Show the league of duels",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows []league.DuelRecord
		if err := fetchJSON("/duels/standings", &rows); err != nil {
			return err
		}
		printDuelStandings(os.Stdout, rows)
		return nil
	},
}

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show hot, cold and inactive teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/streaks"
		if rule != "" {
			endpoint += "?rule=" + url.QueryEscape(rule)
		}
		var res struct {
			Rule    league.StreakRule     `json:"rule"`
			Streaks []handlers.TeamStreak `json:"streaks"`
		}
		if err := fetchJSON(endpoint, &res); err != nil {
			return err
		}
		printStreaks(os.Stdout, res.Rule, res.Streaks)
		return nil
	},
}

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Project cumulative points forward",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/projection"
		if horizon > 0 {
			endpoint += "?horizon=" + strconv.Itoa(horizon)
		}
		var teams []league.Team
		if err := fetchJSON("/teams", &teams); err != nil {
			return err
		}
		var points []league.ProjectionPoint
		if err := fetchJSON(endpoint, &points); err != nil {
			return err
		}
		printProjection(os.Stdout, teams, points)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the duels of a gameweek",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/admin/duels/generate?gameweek=%d", gameweek)
		if dryRun {
			endpoint += "&dry_run=true"
		}
		body, err := performPostRequest(endpoint)
		if err != nil {
			return err
		}
		var res matchmaking.Result
		if err := json.Unmarshal(body, &res); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		printDuels(os.Stdout, res.Gameweek, res.Cards)
		return nil
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

func fetchJSON(endpoint string, v any) error {
	resp, err := http.Get(host + endpoint)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, v)
}

func performPostRequest(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, host+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

func decodeResponse(resp *http.Response, v any) error {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
