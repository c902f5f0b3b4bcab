// Package preference defines the Preference Table (students × topics with
// optional ranks) and the Cost Matrix Builder that turns it into a dense
// matrix suitable for minimum-cost assignment.
//
// Ranks are positive integers, lower = more preferred. A cell with no rank
// is Absent; it is never confused with a zero rank.
//
// BuildCostMatrix substitutes a sentinel cost for every absent cell:
//
//   - SentinelPerRow (default): max stated rank in the student's row
//     (0 if the row is empty) + Penalty.
//   - SentinelGlobal: max stated rank in the whole table + Penalty.
//
// Penalty must be in 1..MaxPenalty and stated ranks in 1..MaxStatedRank, so an absent cell always costs strictly more than
// every stated cell of the same student: unspecified topics are disfavored
// but never unassignable.
//
// Errors (sentinel):
//
//	– ErrEmptyTable          if there are no students or no topics.
//	– ErrEmptyName           if a student or topic name is empty.
//	– ErrDuplicateName       if a student or topic name repeats.
//	– ErrDimensionMismatch   if the rank grid does not match the name lists.
//	– ErrNonPositiveRank     if a stated rank is < 1.
//	– ErrRankTooLarge        if a stated rank is > MaxStatedRank.
//	– ErrShape               if there are fewer topics than students.
//	– ErrDuplicatePreference if a student reuses a rank (Validate only).
//	– ErrRankGap             if stated ranks are not 1..k (Validate, opt-in).
//	– ErrBadPenalty          if Penalty is outside 1..MaxPenalty.
//	– ErrUnknownPolicy       if the sentinel policy is not recognized.
//
// Complexity: every operation is O(students × topics).
package preference
