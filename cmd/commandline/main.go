package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ethanbaker/noteapp/pkg/sdk"
	"github.com/ethanbaker/noteapp/pkg/utils"
)

func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Create the API client
	baseURL := cfg.GetWithDefault("NOTEAPP_URL", "http://localhost:8080")
	client := sdk.NewClient(baseURL)

	// Start interactive session
	ctx := context.Background()
	if err := startInteractiveSession(ctx, client); err != nil {
		log.Fatalf("[COMMANDLINE]: Interactive session failed: %v", err)
	}
}

// startInteractiveSession runs the command line interface for the notes API
func startInteractiveSession(ctx context.Context, client *sdk.Client) error {
	fmt.Println("Noteapp command line. Type 'help' for commands, 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, args, _ := strings.Cut(line, " ")
		args = strings.TrimSpace(args)

		if command == "exit" || command == "quit" {
			return nil
		}

		if err := runCommand(ctx, client, command, args); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

// runCommand dispatches a single CLI command against the API
func runCommand(ctx context.Context, client *sdk.Client, command, args string) error {
	switch command {
	case "help":
		printHelp()

	case "list":
		notes, err := client.GetNotes(ctx)
		if err != nil {
			return err
		}
		printNotes(notes)

	case "get":
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		n, err := client.GetNote(ctx, id)
		if err != nil {
			return err
		}
		printNotes([]sdk.Note{*n})

	case "add":
		subject, description, _ := strings.Cut(args, "|")
		n, err := client.CreateNote(ctx, &sdk.CreateNoteRequest{
			Subject:     strings.TrimSpace(subject),
			Description: strings.TrimSpace(description),
		})
		if err != nil {
			return err
		}
		fmt.Printf("created note %d\n", n.ID)

	case "delete":
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		if err := client.DeleteNote(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted note %d\n", id)

	case "search":
		notes, err := client.SearchNotes(ctx, args)
		if err != nil {
			return err
		}
		printNotes(notes)

	case "count":
		count, err := client.CountNotes(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d notes\n", count)

	case "like":
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		n, err := client.LikeNote(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("note %d now has %d likes\n", n.ID, n.Likes)

	case "unlike":
		id, err := parseIDArg(args)
		if err != nil {
			return err
		}
		n, err := client.UnlikeNote(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("note %d now has %d likes\n", n.ID, n.Likes)

	case "top":
		notes, err := client.GetTopLikedNotes(ctx)
		if err != nil {
			return err
		}
		printNotes(notes)

	default:
		return fmt.Errorf("unknown command %q, type 'help' for commands", command)
	}

	return nil
}

// parseIDArg parses a note ID from a command argument
func parseIDArg(args string) (uint, error) {
	id, err := strconv.ParseUint(args, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected a note ID, got %q", args)
	}
	return uint(id), nil
}

// printNotes writes a compact listing of notes to stdout
func printNotes(notes []sdk.Note) {
	if len(notes) == 0 {
		fmt.Println("no notes")
		return
	}

	for _, n := range notes {
		fmt.Printf("#%d [%d likes] %s: %s\n", n.ID, n.Likes, n.Subject, n.Description)
	}
}

func printHelp() {
	fmt.Println(`commands:
  list                  list all notes
  get <id>              show one note
  add <subject>|<desc>  create a note
  delete <id>           delete a note
  search <text>         search notes by subject
  count                 total note count
  like <id>             like a note
  unlike <id>           unlike a note
  top                   five most liked notes
  exit                  quit`)
}
