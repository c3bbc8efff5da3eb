package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"copsis/domain"
)

func newInventoryCmd() *cobra.Command {
	invCmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Manage inventory items",
	}

	// create
	var name, category, rank string
	var stock int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an inventory item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("name required")
			}
			start := time.Now()
			it, err := inventoryManager.Create(cmd.Context(), domain.InventoryItem{
				Name: name, Category: category, Stock: stock, Rank: rank,
			})
			if err != nil {
				slog.Error("create failed", "name", name, "error", err)
				return err
			}
			slog.Info("item created", "item_id", it.ID, "duration_ms", time.Since(start).Milliseconds())
			printJSON(it)
			return nil
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "name")
	createCmd.Flags().StringVar(&category, "category", "", "category")
	createCmd.Flags().IntVar(&stock, "stock", 0, "stock level")
	createCmd.Flags().StringVar(&rank, "rank", "", "ABC-XYZ rank (default AX)")
	invCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an inventory item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := inventoryManager.Get(cmd.Context(), args[0])
			if err != nil {
				if domain.IsItemNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(it)
			return nil
		},
	}
	invCmd.AddCommand(getCmd)

	// update
	var uName, uCategory, uRank string
	var uStock int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			it, err := inventoryManager.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				it.Name = uName
			}
			if cmd.Flags().Changed("category") {
				it.Category = uCategory
			}
			if cmd.Flags().Changed("stock") {
				it.Stock = uStock
			}
			if cmd.Flags().Changed("rank") {
				it.Rank = uRank
			}

			start := time.Now()
			if err := inventoryManager.Update(cmd.Context(), id, it); err != nil {
				slog.Error("update failed", "item_id", id, "error", err)
				return err
			}

			slog.Info(
				"item updated",
				"item_id", id,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			printJSON(it)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().StringVar(&uCategory, "category", "", "category")
	updateCmd.Flags().IntVar(&uStock, "stock", 0, "stock level")
	updateCmd.Flags().StringVar(&uRank, "rank", "", "ABC-XYZ rank")
	invCmd.AddCommand(updateCmd)

	// list
	var lSearch, lCategory, lStatus, lSort, lOrder, lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := inventoryManager.List(cmd.Context(), domain.ListFilter{
				Search:   lSearch,
				Category: lCategory,
				Status:   lStatus,
				SortBy:   lSort,
				Order:    lOrder,
			})
			if err != nil {
				return err
			}
			if lOutput == "json" {
				printJSON(out)
				return nil
			}
			for _, it := range out {
				fmt.Printf("%s | %s | %s | %d | %s | %s\n",
					it.ID, it.Name, it.Category, it.Stock, domain.StockStatus(it.Stock), it.Rank)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lSearch, "search", "", "match name or category")
	listCmd.Flags().StringVar(&lCategory, "category", "", "category")
	listCmd.Flags().StringVar(&lStatus, "status", "", "In Stock|Low Stock|Out of Stock")
	listCmd.Flags().StringVar(&lSort, "sort-by", "", "sort field: name|stock|category")
	listCmd.Flags().StringVar(&lOrder, "order", "asc", "sort order")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	invCmd.AddCommand(listCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := inventoryManager.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			slog.Info("item deleted", "item_id", args[0])
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	invCmd.AddCommand(deleteCmd)

	// import
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import items from a JSON array or NDJSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}
			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}
			items, err := decodeImport(b)
			if err != nil {
				return err
			}
			start := time.Now()
			err = inventoryManager.BulkImport(cmd.Context(), items)
			slog.Info("import finished", "items", len(items), "duration_ms", time.Since(start).Milliseconds())
			return err
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	invCmd.AddCommand(importCmd)

	// export
	var exportFile, exportCategory string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export items to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			out, err := inventoryManager.List(cmd.Context(), domain.ListFilter{
				Category: exportCategory,
			})
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(out, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "category")
	invCmd.AddCommand(exportCmd)

	return invCmd
}

// decodeImport accepts a JSON array, NDJSON or a single JSON object.
func decodeImport(b []byte) ([]domain.InventoryItem, error) {
	btrim := bytes.TrimSpace(b)
	if len(btrim) == 0 {
		return nil, errors.New("empty file")
	}

	var items []domain.InventoryItem
	if btrim[0] == '[' {
		if err := json.Unmarshal(btrim, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(btrim))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var it domain.InventoryItem
		if err := json.Unmarshal(line, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
