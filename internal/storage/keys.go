package storage

// Collection keys. These names are part of the storage schema and must stay
// exactly as they are for compatibility with previously stored data.
const (
	KeyNotices  = "miltonNotices"
	KeyPrograms = "miltonPrograms"
	KeyFaculty  = "facultyMembers"
	KeyUser     = "miltonUser"
)
