package viral

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// User holds the nested account counters a tweet carries.
//
// Counters are pointers so an absent field is distinguishable from a
// legitimate zero: extraction fails with ErrMissingField instead of
// silently reading 0 followers.
type User struct {
	FollowersCount *int `json:"followers_count"`
	FriendsCount   *int `json:"friends_count"`
}

// Tweet is one input record. Only the fields the pipeline reads are
// decoded; everything else in the source JSON is ignored.
type Tweet struct {
	RetweetCount *int   `json:"retweet_count"`
	Text         string `json:"text"`
	User         *User  `json:"user"`
}

// LoadTweets parses newline-delimited JSON, one tweet object per line.
// Blank lines are skipped. A line that fails to parse aborts the load
// with its line number; there is no partial-success mode.
func LoadTweets(r io.Reader) ([]Tweet, error) {
	scanner := bufio.NewScanner(r)
	// Tweets with full entity payloads can exceed the default 64KB
	// line limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tweets []Tweet
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var t Tweet
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tweets = append(tweets, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return tweets, nil
}

// LoadTweetsFile opens path and loads it with LoadTweets.
func LoadTweetsFile(path string) ([]Tweet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	tweets, err := LoadTweets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tweets, nil
}

// RetweetCounts extracts the retweet count of every tweet, in input
// order, as float64 for the median computation.
func RetweetCounts(tweets []Tweet) ([]float64, error) {
	counts := make([]float64, len(tweets))
	for i, t := range tweets {
		if t.RetweetCount == nil {
			return nil, fmt.Errorf("record %d: retweet_count: %w", i, ErrMissingField)
		}
		counts[i] = float64(*t.RetweetCount)
	}
	return counts, nil
}
