package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"frontier/ai"
	"frontier/arena"
	"frontier/battle"
	"frontier/engine"
	"frontier/game"
	"frontier/ui"
)

var (
	verbose bool
	csvPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "frontier",
		Short: "Frontier Dominion — a turn-based campaign for the frontier",
		Long: `Lead the Frontier League against rival factions contesting the
settlements of the frontier. Collect income, develop your towns, recruit
garrisons, and drive your rivals from the map before the campaign ends.`,
		PersistentPreRun: setupLogging,
		Run:              runCampaign,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine internals")

	arenaCmd := &cobra.Command{
		Use:   "arena",
		Short: "Pit heuristic tunings against each other",
		Run:   runArena,
	}
	arenaCmd.Flags().StringVarP(&csvPath, "csv", "o", "", "Write results to a CSV file")
	rootCmd.AddCommand(arenaCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func runCampaign(cmd *cobra.Command, args []string) {
	world := game.DefaultScenario()
	eng := engine.New(world,
		battle.NewResolver(world.Table, battle.DefaultConfig()),
		ai.NewController(ai.DefaultConfig()))

	title := color.New(color.FgCyan, color.Bold)
	title.Println("Welcome to Frontier Dominion! Lead the Frontier League to victory.")

	reader := bufio.NewReader(os.Stdin)
	var eventLog []string

	for eng.Phase() != engine.Terminal {
		fmt.Println()
		fmt.Print(ui.RenderStatus(world, eng.Turn()))
		printRecent(eventLog, 5)

		choice := prompt(reader, menu)
		var err error
		switch choice {
		case "v":
			fmt.Print(ui.RenderStatus(world, eng.Turn()))
		case "m":
			fmt.Print(ui.RenderMap(world))
		case "c":
			err = eng.Submit(engine.Intent{Type: engine.CollectIncome})
		case "r":
			err = submitRecruit(reader, eng)
		case "b":
			err = submitInvest(reader, eng)
		case "a":
			err = submitAttack(reader, eng)
		case "e":
			err = eng.Submit(engine.Intent{Type: engine.EndTurn})
		case "q":
			err = eng.Submit(engine.Intent{Type: engine.Quit})
		default:
			fmt.Println("Please choose a valid option.")
		}
		if err != nil {
			color.Red("Action failed: %v", err)
			continue
		}
		eventLog = appendEvents(eventLog, eng.DrainEvents())
	}

	fmt.Println()
	fmt.Print(ui.RenderMap(world))
	fmt.Println()
	color.New(color.FgGreen, color.Bold).Print(ui.RenderSummary(eng.Summary()))
	fmt.Println("Frontier Dominion concluded. Share your legend with the townsfolk!")
}

const menu = `Choose an action:
  [v] View status report
  [m] View frontier map
  [c] Collect income
  [r] Recruit units
  [b] Develop settlement
  [a] Attack neighboring territory
  [e] End turn
  [q] Quit
> `

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		// Treat a closed stdin as quitting the campaign.
		return "q"
	}
	return strings.ToLower(strings.TrimSpace(line))
}

func printRecent(eventLog []string, n int) {
	if len(eventLog) == 0 {
		return
	}
	fmt.Println("-- Recent Events --")
	start := len(eventLog) - n
	if start < 0 {
		start = 0
	}
	for _, line := range eventLog[start:] {
		fmt.Println("  " + line)
	}
}

func appendEvents(eventLog []string, events []engine.Event) []string {
	for _, ev := range events {
		line := ui.FormatEvent(ev)
		fmt.Println(line)
		eventLog = append(eventLog, line)
	}
	return eventLog
}

func submitRecruit(reader *bufio.Reader, eng *engine.Engine) error {
	id := prompt(reader, "Recruit at which settlement? ")
	unit := prompt(reader, "Unit type (militia/cavalry/artillery)? ")
	count, err := strconv.Atoi(prompt(reader, "How many? "))
	if err != nil {
		return fmt.Errorf("not a number: %w", err)
	}
	return eng.Submit(engine.Intent{
		Type:         engine.Recruit,
		SettlementID: id,
		UnitName:     unit,
		Count:        count,
	})
}

func submitInvest(reader *bufio.Reader, eng *engine.Engine) error {
	id := prompt(reader, "Develop which settlement? ")
	amount, err := strconv.Atoi(prompt(reader, "Invest how much? "))
	if err != nil {
		return fmt.Errorf("not a number: %w", err)
	}
	return eng.Submit(engine.Intent{
		Type:         engine.Invest,
		SettlementID: id,
		Amount:       amount,
	})
}

func submitAttack(reader *bufio.Reader, eng *engine.Engine) error {
	from := prompt(reader, "Attack from? ")
	to := prompt(reader, "Attack which territory? ")
	return eng.Submit(engine.Intent{
		Type:         engine.Attack,
		SettlementID: from,
		TargetID:     to,
	})
}

func runArena(cmd *cobra.Command, args []string) {
	results, err := arena.Run(arena.DefaultMatchups())
	if err != nil {
		color.Red("Arena failed: %v", err)
		os.Exit(1)
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Matchup", "Winner", "Outcome", "Turns", "Battles"}),
	)
	for _, r := range results {
		winner := r.Winner
		if winner == "" {
			winner = "draw"
		}
		table.Append([]string{r.Matchup, winner, r.Outcome.String(), strconv.Itoa(r.Turns), strconv.Itoa(r.Battles)})
	}
	table.Render()

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			color.Red("Cannot write %s: %v", csvPath, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := arena.WriteResults(f, results); err != nil {
			color.Red("Cannot write %s: %v", csvPath, err)
			os.Exit(1)
		}
		fmt.Printf("Results written to %s\n", csvPath)
	}
}
