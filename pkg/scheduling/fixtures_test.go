package scheduling

import "time"

var may1 = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func alice(onLeave bool) Employee {
	return Employee{ID: "e1", OrgID: "org", Name: "Alice", Position: RoleRA, OnLeave: onLeave}
}

func aliceMorning() Assignment {
	return Assignment{
		ID: "a1", OrgID: "org", EmployeeID: "e1", EmployeeName: "Alice", Position: "RA",
		Shift: "morning", Date: may1, Location: "Third_floor",
	}
}
