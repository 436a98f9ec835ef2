package validation

// Chains used by the HTTP handlers.
var (
	TaskID = Chain{
		Param("id").Exists("Invalid task ID").Rule("mongodb", "Invalid task ID"),
	}

	ListTasks = Chain{
		Query("page").Optional().PositiveInt("page must be a positive integer"),
		Query("limit").Optional().PositiveInt("limit must be a positive integer"),
		Query("completed").Optional().Rule("boolean", "completed must be a boolean value"),
		Query("sortBy").Optional().Rule("oneof=name completed description", "sortBy must be one of name, completed, description"),
		Query("sortDirection").Optional().Rule("oneof=asc desc", "sortDirection must be asc or desc"),
	}

	CreateTask = Chain{
		Body("name").
			Exists(`The "name" field is required`).
			IsString(`The "name" field must be a string`).
			Rule("required", `The "name" field must not be empty`),
		Body("description").Optional().
			IsString("The description must be a string").
			Rule("max=200", "The description must be at most 200 characters"),
		Body("completed").
			Exists(`The "completed" field is required`).
			Rule("boolean", `The "completed" field must be a boolean value`),
	}

	UpdateTask = Chain{
		Body("name").Optional().
			IsString(`The "name" field must be a string`),
		Body("description").Optional().
			IsString("The description must be a string").
			Rule("max=200", "The description must be at most 200 characters"),
		Body("completed").Optional().
			Rule("boolean", `The "completed" field must be a boolean value`),
	}

	Credentials = Chain{
		Body("username").
			Exists("Username is required").
			IsString("Username must be a string").
			Rule("min=3", "Username must be at least 3 characters long"),
		Body("password").
			Exists("Password is required").
			IsString("Password must be a string").
			Rule("min=6", "Password must be at least 6 characters long"),
	}
)
