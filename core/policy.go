package core

func IsAdmin(a Account) bool {
	return a.Role == RoleAdmin
}

// CanActOnTask reports whether a may change the task: admins act on every task, members only on their own.
func CanActOnTask(a Account, t Task) bool {
	return IsAdmin(a) || a.Username == t.AssignedTo
}
