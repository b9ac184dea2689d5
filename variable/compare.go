package variable

import "strings"

// Compare orders two elements of a 1-D Variable by natural ordering:
// arithmetic types by numeric value, strings lexicographically, bools
// false before true. Used by Dataset.Sort to turn a 1-D axis variable into
// an ascending permutation.
func Compare(v Variable, i, j int) int {
    a, b := v.At(i), v.At(j)
    switch av := a.(type) {
    case float64:
        return compareFloat(av, b.(float64))
    case float32:
        return compareFloat(float64(av), float64(b.(float32)))
    case int64:
        return compareInt(av, b.(int64))
    case int32:
        return compareInt(int64(av), int64(b.(int32)))
    case bool:
        bv := b.(bool)
        if av == bv {
            return 0
        }
        if !av {
            return -1
        }
        return 1
    case string:
        return strings.Compare(av, b.(string))
    default:
        return 0
    }
}

func compareFloat(a, b float64) int {
    switch {
    case a < b:
        return -1
    case a > b:
        return 1
    default:
        return 0
    }
}

func compareInt(a, b int64) int {
    switch {
    case a < b:
        return -1
    case a > b:
        return 1
    default:
        return 0
    }
}
