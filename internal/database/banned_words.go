package database

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const bannedWordsURL = "https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"

// SeedBannedWords fetches and seeds the banned words list used to screen
// custom card prompts. A no-op when the table is already populated.
func (db *DB) SeedBannedWords() error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM banned_words").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check banned words count: %w", err)
	}

	if count > 0 {
		log.Printf("Banned words filter already populated with %d words", count)
		return nil
	}

	log.Println("Downloading banned words list...")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(bannedWordsURL)
	if err != nil {
		return fmt.Errorf("failed to download banned words list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status code from banned words URL: %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	wordsAdded := 0

	// Bulk insert inside one transaction
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := db.Dialect.RewriteQuery("INSERT INTO banned_words (word) VALUES (?)")
	stmt, err := tx.Tx.Prepare(insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for scanner.Scan() {
		word := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if word == "" {
			continue
		}
		if _, err := stmt.Exec(word); err != nil {
			return fmt.Errorf("failed to insert banned word: %w", err)
		}
		wordsAdded++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read banned words list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit banned words: %w", err)
	}

	log.Printf("Banned words filter seeded with %d words", wordsAdded)
	return nil
}

// ContainsBannedWord reports whether any word in text appears in the banned
// words table. Matching is per whitespace-separated word, case-insensitive.
func (db *DB) ContainsBannedWord(text string) (bool, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false, nil
	}

	query := "SELECT COUNT(*) FROM banned_words WHERE word = ?"
	for _, word := range words {
		word = strings.Trim(word, ".,!?\"'()[]{}:;")
		if word == "" {
			continue
		}

		var count int
		if err := db.QueryRow(query, word).Scan(&count); err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}
