package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Students(ctx context.Context) error
	StudentShow(ctx context.Context, args []string) error
	SearchStudents(ctx context.Context) error
	Placements(ctx context.Context) error
	PlacementShow(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	AddCGPA(ctx context.Context) error
	DeleteCGPA(ctx context.Context) error
	AddStudent(ctx context.Context) error
	DeleteStudent(ctx context.Context) error
	AddDrive(ctx context.Context) error
	EditDrive(ctx context.Context) error
	DeleteDrive(ctx context.Context) error
	Upload(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the placetrack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pt %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: students, student <id>, search, placements, placement <id>, stats, addcgpa, delcgpa, whoami, logout, exit")
				printlnFn("Admin commands: addstudent, delstudent, adddrive, editdrive, deldrive, upload")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "s", "students":
			_ = a.Students(ctx)

		case "student":
			_ = a.StudentShow(ctx, args)

		case "search":
			_ = a.SearchStudents(ctx)

		case "p", "placements":
			_ = a.Placements(ctx)

		case "placement":
			_ = a.PlacementShow(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "addcgpa":
			_ = a.AddCGPA(ctx)

		case "delcgpa":
			_ = a.DeleteCGPA(ctx)

		case "addstudent":
			_ = a.AddStudent(ctx)

		case "delstudent":
			_ = a.DeleteStudent(ctx)

		case "adddrive":
			_ = a.AddDrive(ctx)

		case "editdrive":
			_ = a.EditDrive(ctx)

		case "deldrive":
			_ = a.DeleteDrive(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
