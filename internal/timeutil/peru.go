package timeutil

import "time"

// Peru keeps UTC-5 year-round (no DST), so a fixed zone is enough and avoids
// depending on the host tzdata.
var zonaPeru = time.FixedZone("America/Lima", -5*60*60)

// AhoraPeru returns the current wall-clock time in Peru.
func AhoraPeru() time.Time { return time.Now().In(zonaPeru) }

// SelloLegible formats a timestamp the way ledger rows record their creation
// time, e.g. "31/08/2026 04:05 PM".
func SelloLegible(t time.Time) string { return t.Format("02/01/2006 03:04 PM") }

// SelloArchivo formats a timestamp for embedding in file names, sortable
// lexicographically, e.g. "20260831_160500".
func SelloArchivo(t time.Time) string { return t.Format("20060102_150405") }
