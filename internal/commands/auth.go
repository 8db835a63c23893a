package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register [name] [email] [password]",
	Short: "Create a new account and log in",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := userStore().Register(args[0], args[1], args[2])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🎉 Welcome, %s! Your account is ready and you are logged in.\n", user.Name)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Log in to your account",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := userStore().Login(args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("👋 Welcome back, %s! (level %d, %d points)\n", user.Name, user.Level, user.Points)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if err := userStore().Logout(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("👋 Logged out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		user, err := requireUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
	},
}
