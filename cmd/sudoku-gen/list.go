package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sudokuforge/engine/internal/infrastructure/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzles previously saved with --out",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("dir", "", "directory passed as --out during generation")
	_ = viper.BindPFlag("list.dir", listCmd.Flags().Lookup("dir"))
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir := viper.GetString("list.dir")
	if dir == "" {
		return fmt.Errorf("--dir is required")
	}
	store := storage.NewFS(dir)
	entries, err := store.List(context.Background())
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\t%d clues\t%s\n", e.ID, e.Difficulty, e.ClueCount, e.GeneratedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}
