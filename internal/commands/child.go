package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/db"
)

var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Manage children profiles",
	Long: `Manage the children that missions can be delegated to. Each child keeps its
own point total, separate from yours.`,
}

var childAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a child profile",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		age, _ := cmd.Flags().GetInt("age")
		color, _ := cmd.Flags().GetString("color")

		child, err := childStore().Create(db.CreateChildRequest{
			UserID:      user.ID,
			Name:        strings.Join(args, " "),
			Age:         age,
			AvatarColor: color,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("👧 Added %s (age %d), id %s\n", child.Name, child.Age, child.ID)
	},
}

var childListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List children",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		children, err := childStore().ListByUser(user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(children) == 0 {
			fmt.Println("No children yet. Use 'missao child add [name] --age N' to add one.")
			return
		}

		fmt.Printf("%-36s %-20s %-4s %s\n", "ID", "NAME", "AGE", "POINTS")
		fmt.Println(strings.Repeat("-", 70))
		for _, child := range children {
			fmt.Printf("%-36s %-20s %-4d %d ⭐\n", child.ID, child.Name, child.Age, child.Points)
		}
	},
}

var childEditCmd = &cobra.Command{
	Use:   "edit [child-id]",
	Short: "Edit a child profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := db.UpdateChildRequest{}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
		}
		if cmd.Flags().Changed("age") {
			age, _ := cmd.Flags().GetInt("age")
			req.Age = &age
		}
		if cmd.Flags().Changed("color") {
			color, _ := cmd.Flags().GetString("color")
			req.AvatarColor = &color
		}

		child, err := childStore().Update(user.ID, args[0], req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated %s\n", child.Name)
	},
}

var childRmCmd = &cobra.Command{
	Use:   "rm [child-id]",
	Short: "Delete a child profile",
	Long: `Delete a child profile. Missions assigned to the child are kept; the child
is only removed from their assignee list.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		child, err := childStore().GetByID(user.ID, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := childStore().Delete(user.ID, child.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Removed %s. Their missions were kept and unassigned.\n", child.Name)
	},
}

func init() {
	childAddCmd.Flags().Int("age", 0, "Child's age (1-18)")
	childAddCmd.Flags().String("color", "purple", "Avatar color")

	childEditCmd.Flags().String("name", "", "New name")
	childEditCmd.Flags().Int("age", 0, "New age (1-18)")
	childEditCmd.Flags().String("color", "", "New avatar color")

	childCmd.AddCommand(childAddCmd)
	childCmd.AddCommand(childListCmd)
	childCmd.AddCommand(childEditCmd)
	childCmd.AddCommand(childRmCmd)
}
