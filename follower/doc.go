// Package follower reads paths out of an arena after the cellular automaton
// has scored it.
//
// What:
//
//   - Follow: from a start item, repeatedly step to the neighbor that realised
//     the current item's state (highest neighbor state + relation weight over
//     usable, evaluated, non-failed neighbors; first relation in EqualRange
//     order on ties).
//   - FollowAll: every remaining start item at or above a minimum state,
//     expanded along all maximal continuations. Ties fork the path.
//   - FollowHeaviest: the plain read-out that walks the heaviest relation of
//     each item without looking at cell states.
//
// Paths never revisit an item. The cell slice and neighborhood are read only.
//
// Complexity:
//
//   - Follow, FollowHeaviest: O(L · d) for a path of L items with out-degree d.
//   - FollowAll: proportional to the number of emitted paths times their length.
package follower
