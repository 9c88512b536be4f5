package corpus

// Default reference lists for the payroll generator. The corpus is meant to
// look like messy OCR output, so a few first-name entries are salutation
// artifacts ("Miss Jessica", "Mrs. Margaret"). They are sampled as-is.

var FirstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
	"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Donald",
	"Mark", "Paul", "Steven", "Andrew", "Kenneth", "Mary", "Patricia", "Jennifer",
	"Linda", "Elizabeth", "Barbara", "Susan", "Jessica", "Miss Jessica", "Sarah", "Miss Karen", "Nancy",
	"Lisa", "Mrs. Margaret", "Margaret", "Betty", "Sandra", "Ashley", "Dorothy", "Kimberly", "Emily",
	"Donna", "Michelle", "Carol", "Amanda", "Melissa", "Deborah",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera",
}

// Titles is carried as reference data for a possible future record layout,
// but the payroll generator never samples it. Output lines contain no title.
var Titles = []string{"Rev.", "Dr.", ""}

var Agencies = []string{
	"Department of Agriculture", "Department of Commerce", "Department of Defense",
	"Department of Education", "Department of Energy", "Department of Health and Human Services",
	"Department of Homeland Security", "Department of Housing and Urban Development",
	"Department of the Interior", "Department of Justice", "Department of Labor",
	"Department of State", "Department of Transportation", "Department of the Treasury",
	"Department of Veterans Affairs", "Environmental Protection Agency",
	"Social Security Administration", "National Aeronautics and Space Administration",
}

var Cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
	"Fort Worth", "Columbus", "Charlotte", "San Francisco", "Indianapolis", "Seattle",
	"Denver", "Washington",
}
