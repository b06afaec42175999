// useradmin is the out-of-band account administration tool. The server never
// updates or deletes user rows itself; this CLI does.
//
//	useradmin -db data/pytrail.db list
//	useradmin -db data/pytrail.db delete -username alice
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	_ "github.com/mattn/go-sqlite3"

	dbstore "github.com/nlitvin/pytrail/internal/db"
)

func main() {
	dbPath := flag.String("db", "data/pytrail.db", "path to the sqlite database")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	sqlDB, err := sql.Open("sqlite3", dbstore.OpenDSN(*dbPath))
	if err != nil {
		fatalf("open database: %v", err)
	}
	defer sqlDB.Close()

	store, err := dbstore.NewSQLiteStore(sqlDB)
	if err != nil {
		fatalf("init store: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch flag.Arg(0) {
	case "list":
		if err := listUsers(ctx, store); err != nil {
			fatalf("list users: %v", err)
		}
	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		username := fs.String("username", "", "username to delete")
		_ = fs.Parse(flag.Args()[1:])
		if *username == "" {
			fatalf("delete requires -username")
		}
		deleted, err := store.DeleteUserByUsername(ctx, *username)
		if err != nil {
			fatalf("delete user: %v", err)
		}
		if !deleted {
			fatalf("no such user %q", *username)
		}
		fmt.Printf("deleted %s and their progress\n", *username)
	default:
		usage()
		os.Exit(2)
	}
}

func listUsers(ctx context.Context, store *dbstore.SQLiteStore) error {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: useradmin [-db PATH] list | delete -username NAME")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
