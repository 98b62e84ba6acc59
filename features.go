package viral

import (
	"fmt"
	"unicode/utf8"

	"gonum.org/v1/gonum/mat"
)

// NumFeatures is the width of every feature vector.
const NumFeatures = 3

// FeatureNames gives the column order of every feature matrix built by
// this package: (tweet_length, followers_count, friends_count).
var FeatureNames = [NumFeatures]string{"tweet_length", "followers_count", "friends_count"}

// Features derives the ordered numeric triple for one tweet.
//
// tweet_length counts Unicode code points, not bytes, so multi-byte
// text measures the way the source dataset measures it. The two
// counters are copied verbatim from the nested user object.
//
// Returns ErrMissingField when the user object or either counter is
// absent.
func Features(t Tweet) ([NumFeatures]float64, error) {
	var v [NumFeatures]float64

	if t.User == nil {
		return v, fmt.Errorf("user: %w", ErrMissingField)
	}
	if t.User.FollowersCount == nil {
		return v, fmt.Errorf("user.followers_count: %w", ErrMissingField)
	}
	if t.User.FriendsCount == nil {
		return v, fmt.Errorf("user.friends_count: %w", ErrMissingField)
	}

	v[0] = float64(utf8.RuneCountInString(t.Text))
	v[1] = float64(*t.User.FollowersCount)
	v[2] = float64(*t.User.FriendsCount)
	return v, nil
}

// FeatureMatrix builds the N×3 raw feature matrix, one row per tweet
// in input order.
func FeatureMatrix(tweets []Tweet) (*mat.Dense, error) {
	if len(tweets) == 0 {
		return nil, fmt.Errorf("feature matrix: %w", ErrEmptyDataset)
	}

	X := mat.NewDense(len(tweets), NumFeatures, nil)
	for i, t := range tweets {
		v, err := Features(t)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		X.SetRow(i, v[:])
	}
	return X, nil
}
