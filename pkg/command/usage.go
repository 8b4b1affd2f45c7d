package command

const (
	AddDeveloperWord    = "add-developer"
	AddClientWord       = "add-client"
	AddProjectWord      = "add-project"
	DeleteDeveloperWord = "delete-developer"
	DeleteClientWord    = "delete-client"
	DeleteProjectWord   = "delete-project"
	EditDeveloperWord   = "edit-developer"
	EditClientWord      = "edit-client"
	EditProjectWord     = "edit-project"
	ListDeveloperWord   = "list-developer"
	ListClientWord      = "list-client"
	ListProjectWord     = "list-project"
	FindDeveloperWord   = "find-developer"
	FindClientWord      = "find-client"
	FindProjectWord     = "find-project"
	MarkDeadlineWord    = "mark-deadline"
	UnmarkDeadlineWord  = "unmark-deadline"
	ImportDeveloperWord = "import-developer"
	ImportClientWord    = "import-client"
	HelpWord            = "help"
	ExitWord            = "exit"
)

const (
	AddDeveloperUsage = AddDeveloperWord + ": Adds a developer to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS r/ROLE s/SALARY d/DATE_JOINED [pr/PROJECT]...\n" +
		"Example: " + AddDeveloperWord + " n/John Doe p/98765432 e/johnd@example.com " +
		"a/311, Clementi Ave 2, #02-25 r/Developer s/4500 d/11-11-2023 pr/AppDev"

	AddClientUsage = AddClientWord + ": Adds a client to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS r/ROLE o/ORGANISATION do/DOCUMENT [pr/PROJECT]...\n" +
		"Example: " + AddClientWord + " n/Jane Doe p/98765432 e/janed@example.com " +
		"a/311, Clementi Ave 2, #02-25 r/HR o/Google do/https://docs.example.com/contract pr/AppDev"

	AddProjectUsage = AddProjectWord + ": Adds a project to the address book. " +
		"Parameters: n/NAME dsc/DESCRIPTION [dl/DEADLINE]...\n" +
		"Example: " + AddProjectWord + " n/AppDev dsc/Mobile app for sales " +
		"dl/31-12-2019,Develop front end interface,HIGH,0"

	DeleteDeveloperUsage = DeleteDeveloperWord + ": Deletes the developer identified by the index number " +
		"used in the displayed developer list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteDeveloperWord + " 1"

	DeleteClientUsage = DeleteClientWord + ": Deletes the client identified by the index number " +
		"used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteClientWord + " 1"

	DeleteProjectUsage = DeleteProjectWord + ": Deletes the project identified by the index number " +
		"used in the displayed project list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteProjectWord + " 1"

	EditDeveloperUsage = EditDeveloperWord + ": Edits the details of the developer identified " +
		"by the index number used in the displayed developer list. Existing values will be overwritten.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] " +
		"[r/ROLE] [s/SALARY] [d/DATE_JOINED] [pr/PROJECT]...\n" +
		"Example: " + EditDeveloperWord + " 1 p/91234567 e/johndoe@example.com"

	EditClientUsage = EditClientWord + ": Edits the details of the client identified " +
		"by the index number used in the displayed client list. Existing values will be overwritten.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] " +
		"[r/ROLE] [o/ORGANISATION] [do/DOCUMENT] [pr/PROJECT]...\n" +
		"Example: " + EditClientWord + " 1 o/Meta"

	EditProjectUsage = EditProjectWord + ": Edits the details of the project identified " +
		"by the index number used in the displayed project list. Existing values will be overwritten.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [dsc/DESCRIPTION] [dl/DEADLINE]...\n" +
		"Example: " + EditProjectWord + " 1 dsc/Web app for sales"

	ListDeveloperUsage = ListDeveloperWord + ": Lists all developers."
	ListClientUsage    = ListClientWord + ": Lists all clients."
	ListProjectUsage   = ListProjectWord + ": Lists all projects."

	FindDeveloperUsage = FindDeveloperWord + ": Finds all developers whose fields contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: [n/KEYWORDS] [r/KEYWORDS] [pr/KEYWORDS] (at least one)\n" +
		"Example: " + FindDeveloperWord + " n/alice bob r/developer"

	FindClientUsage = FindClientWord + ": Finds all clients whose fields contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: [n/KEYWORDS] [r/KEYWORDS] [o/KEYWORDS] [pr/KEYWORDS] (at least one)\n" +
		"Example: " + FindClientWord + " o/google"

	FindProjectUsage = FindProjectWord + ": Finds all projects whose fields contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: [n/KEYWORDS] [dsc/KEYWORDS] [pri/PRIORITY] (at least one)\n" +
		"Example: " + FindProjectWord + " n/appdev pri/HIGH"

	MarkDeadlineUsage = MarkDeadlineWord + ": Marks the specified deadline of the specified project " +
		"as done.\n" +
		"PROJECT_INDEX must be a positive integer which is the project's index number in the displayed " +
		"project list, and DEADLINE_INDEX must be a positive integer representing the index of the " +
		"deadline in the displayed deadline table.\n" +
		"Parameters: PROJECT_INDEX DEADLINE_INDEX\n" +
		"Example: " + MarkDeadlineWord + " 1 2"

	UnmarkDeadlineUsage = UnmarkDeadlineWord + ": Marks the specified deadline of the specified project " +
		"as undone.\n" +
		"PROJECT_INDEX must be a positive integer which is the project's index number in the displayed " +
		"project list, and DEADLINE_INDEX must be a positive integer representing the index of the " +
		"deadline in the displayed deadline table.\n" +
		"Parameters: PROJECT_INDEX DEADLINE_INDEX\n" +
		"Example: " + UnmarkDeadlineWord + " 1 2"

	ImportDeveloperUsage = ImportDeveloperWord + ": Imports developers from a CSV file with the header " +
		"name,phone,email,address,role,salary,dateJoined,projects (projects separated by ;).\n" +
		"Parameters: FILE_PATH\n" +
		"Example: " + ImportDeveloperWord + " developers.csv"

	ImportClientUsage = ImportClientWord + ": Imports clients from a CSV file with the header " +
		"name,phone,email,address,role,organisation,document,projects (projects separated by ;).\n" +
		"Parameters: FILE_PATH\n" +
		"Example: " + ImportClientWord + " clients.csv"

	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpWord

	ExitUsage = ExitWord + ": Exits the program.\n" +
		"Example: " + ExitWord
)

// Usages lists every usage text in the order the help screen shows them
var Usages = []string{
	AddDeveloperUsage, AddClientUsage, AddProjectUsage,
	DeleteDeveloperUsage, DeleteClientUsage, DeleteProjectUsage,
	EditDeveloperUsage, EditClientUsage, EditProjectUsage,
	ListDeveloperUsage, ListClientUsage, ListProjectUsage,
	FindDeveloperUsage, FindClientUsage, FindProjectUsage,
	MarkDeadlineUsage, UnmarkDeadlineUsage,
	ImportDeveloperUsage, ImportClientUsage,
	HelpUsage, ExitUsage,
}
