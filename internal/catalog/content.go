package catalog

// builtinModules defines the course content. This is the deployed variant's
// source of truth: modules live in process memory, not in the database.
func builtinModules() []*Module {
	return []*Module{
		{
			ModuleSummary: ModuleSummary{
				ID:               1,
				Title:            "Getting Started with Python",
				Description:      "Variables, values and your first print statements.",
				Difficulty:       "beginner",
				EstimatedMinutes: 30,
				Order:            1,
			},
			Lessons: []Lesson{
				{
					Heading: "Your first program",
					Body:    "Every Python program is a sequence of statements. The print function writes text to the screen, and it is the fastest way to see your code do something.",
					Code:    "print(\"Hello, world!\")",
				},
				{
					Heading: "Variables",
					Body:    "A variable is a name bound to a value. Python figures out the type from the value, so there is nothing to declare.",
					Code:    "name = \"Ada\"\nage = 36\nprint(name, age)",
				},
				{
					Heading: "Numbers and strings",
					Body:    "Integers, floats and strings are the types you will use constantly. Strings can be joined with + and repeated with *.",
					Code:    "greeting = \"Hi \" * 3\ntotal = 7 + 3.5\nprint(greeting, total)",
				},
			},
			Exercises: []Exercise{
				{
					Prompt:      "Create a variable called city with the name of your city, then print a sentence that includes it.",
					StarterCode: "city = ...\nprint(...)",
					Hint:        "print accepts several arguments separated by commas.",
					Solution:    "city = \"Lisbon\"\nprint(\"I live in\", city)",
				},
				{
					Prompt:      "Store two numbers in variables and print their sum and product.",
					StarterCode: "a = 6\nb = 7\n# print the sum and the product",
					Hint:        "Use + for the sum and * for the product.",
					Solution:    "a = 6\nb = 7\nprint(a + b)\nprint(a * b)",
				},
			},
			Quiz: []QuizQuestion{
				{
					Question: "Which function writes text to the screen?",
					Options:  []string{"echo", "print", "write", "display"},
					Answer:   1,
				},
				{
					Question: "What is the result of \"ab\" * 2?",
					Options:  []string{"abab", "ab2", "aabb", "an error"},
					Answer:   0,
				},
			},
		},
		{
			ModuleSummary: ModuleSummary{
				ID:               2,
				Title:            "Control Flow",
				Description:      "Make decisions with if/elif/else and repeat work with loops.",
				Difficulty:       "beginner",
				EstimatedMinutes: 45,
				Order:            2,
			},
			Lessons: []Lesson{
				{
					Heading: "Conditionals",
					Body:    "An if statement runs its block only when the condition is true. elif and else cover the remaining cases, and indentation defines the block.",
					Code:    "score = 82\nif score >= 90:\n    print(\"A\")\nelif score >= 80:\n    print(\"B\")\nelse:\n    print(\"keep practicing\")",
				},
				{
					Heading: "while loops",
					Body:    "A while loop repeats as long as its condition holds. Make sure something in the body eventually makes the condition false.",
					Code:    "count = 3\nwhile count > 0:\n    print(count)\n    count -= 1",
				},
				{
					Heading: "for loops and range",
					Body:    "A for loop walks over the items of a sequence. range produces a sequence of numbers, which makes counting loops short and readable.",
					Code:    "for i in range(1, 4):\n    print(\"lap\", i)",
				},
			},
			Exercises: []Exercise{
				{
					Prompt:      "Write a loop that prints the even numbers from 2 to 10.",
					StarterCode: "for n in range(...):\n    ...",
					Hint:        "range accepts a step argument: range(start, stop, step).",
					Solution:    "for n in range(2, 11, 2):\n    print(n)",
				},
				{
					Prompt:      "Given temperature = 17, print \"cold\" below 10, \"mild\" up to 20, otherwise \"warm\".",
					StarterCode: "temperature = 17\n# your conditional here",
					Hint:        "Chain the cases with if, elif and else.",
					Solution:    "temperature = 17\nif temperature < 10:\n    print(\"cold\")\nelif temperature <= 20:\n    print(\"mild\")\nelse:\n    print(\"warm\")",
				},
			},
			Quiz: []QuizQuestion{
				{
					Question: "What does range(3) produce?",
					Options:  []string{"1, 2, 3", "0, 1, 2", "0, 1, 2, 3", "3, 2, 1"},
					Answer:   1,
				},
				{
					Question: "Which keyword handles a condition when the if branch is false?",
					Options:  []string{"otherwise", "case", "else", "default"},
					Answer:   2,
				},
				{
					Question: "What defines a block in Python?",
					Options:  []string{"curly braces", "parentheses", "indentation", "semicolons"},
					Answer:   2,
				},
			},
		},
		{
			ModuleSummary: ModuleSummary{
				ID:               3,
				Title:            "Functions",
				Description:      "Package logic into reusable, named units.",
				Difficulty:       "intermediate",
				EstimatedMinutes: 45,
				Order:            3,
			},
			Lessons: []Lesson{
				{
					Heading: "Defining functions",
					Body:    "def introduces a function. Parameters are local names for the values the caller passes in, and return hands a result back.",
					Code:    "def area(width, height):\n    return width * height\n\nprint(area(3, 4))",
				},
				{
					Heading: "Default arguments",
					Body:    "Parameters can carry defaults, so callers only supply what differs from the common case.",
					Code:    "def greet(name, greeting=\"Hello\"):\n    return f\"{greeting}, {name}!\"\n\nprint(greet(\"Sam\"))\nprint(greet(\"Sam\", \"Hi\"))",
				},
				{
					Heading: "Scope",
					Body:    "Names assigned inside a function are local to it. Reading an outer name works; rebinding it requires care and is usually a sign to return a value instead.",
					Code:    "limit = 10\n\ndef within(n):\n    return n <= limit\n\nprint(within(7))",
				},
			},
			Exercises: []Exercise{
				{
					Prompt:      "Write a function is_even(n) that returns True for even numbers.",
					StarterCode: "def is_even(n):\n    ...",
					Hint:        "The remainder operator % gives 0 for even numbers.",
					Solution:    "def is_even(n):\n    return n % 2 == 0",
				},
				{
					Prompt:      "Write a function clamp(value, low, high) that limits value to the given range.",
					StarterCode: "def clamp(value, low, high):\n    ...",
					Hint:        "min and max compose nicely here.",
					Solution:    "def clamp(value, low, high):\n    return max(low, min(value, high))",
				},
			},
			Quiz: []QuizQuestion{
				{
					Question: "Which keyword defines a function?",
					Options:  []string{"func", "def", "function", "fn"},
					Answer:   1,
				},
				{
					Question: "What does a function without a return statement return?",
					Options:  []string{"0", "the last expression", "None", "an empty string"},
					Answer:   2,
				},
			},
		},
		{
			ModuleSummary: ModuleSummary{
				ID:               4,
				Title:            "Lists and Dictionaries",
				Description:      "Collect, index and transform data with Python's core containers.",
				Difficulty:       "intermediate",
				EstimatedMinutes: 60,
				Order:            4,
			},
			Lessons: []Lesson{
				{
					Heading: "Lists",
					Body:    "A list is an ordered, mutable sequence. Index from zero, slice with colons, and append to grow.",
					Code:    "langs = [\"python\", \"go\"]\nlangs.append(\"rust\")\nprint(langs[0], len(langs))",
				},
				{
					Heading: "Dictionaries",
					Body:    "A dict maps keys to values. Lookup, insertion and membership tests are all written with square brackets or the in operator.",
					Code:    "ages = {\"ada\": 36, \"alan\": 41}\nages[\"grace\"] = 45\nprint(\"ada\" in ages, ages[\"grace\"])",
				},
				{
					Heading: "Comprehensions",
					Body:    "A comprehension builds a new list from an existing sequence in one expression, optionally filtering as it goes.",
					Code:    "squares = [n * n for n in range(5) if n % 2 == 0]\nprint(squares)",
				},
			},
			Exercises: []Exercise{
				{
					Prompt:      "Given scores = [70, 85, 92, 60], build a list of the scores of 80 or above.",
					StarterCode: "scores = [70, 85, 92, 60]\nhigh = ...",
					Hint:        "A comprehension with an if clause does this in one line.",
					Solution:    "scores = [70, 85, 92, 60]\nhigh = [s for s in scores if s >= 80]",
				},
				{
					Prompt:      "Count how often each letter appears in the string \"banana\" using a dict.",
					StarterCode: "counts = {}\nfor ch in \"banana\":\n    ...",
					Hint:        "dict.get(key, 0) gives a default when the key is missing.",
					Solution:    "counts = {}\nfor ch in \"banana\":\n    counts[ch] = counts.get(ch, 0) + 1",
				},
			},
			Quiz: []QuizQuestion{
				{
					Question: "What is the index of the first element of a list?",
					Options:  []string{"1", "0", "-1", "it depends"},
					Answer:   1,
				},
				{
					Question: "Which expression tests whether key k is present in dict d?",
					Options:  []string{"d.has(k)", "k in d", "d.contains(k)", "exists(d, k)"},
					Answer:   1,
				},
			},
		},
		{
			ModuleSummary: ModuleSummary{
				ID:               5,
				Title:            "Errors and Files",
				Description:      "Handle failures gracefully and read and write files.",
				Difficulty:       "intermediate",
				EstimatedMinutes: 60,
				Order:            5,
			},
			Lessons: []Lesson{
				{
					Heading: "Exceptions",
					Body:    "Operations that can fail raise exceptions. try/except lets you handle the failure instead of crashing; catch the narrowest type you can.",
					Code:    "try:\n    n = int(\"not a number\")\nexcept ValueError:\n    print(\"that wasn't a number\")",
				},
				{
					Heading: "Reading files",
					Body:    "The with statement opens a file and guarantees it is closed when the block ends, even on error.",
					Code:    "with open(\"notes.txt\") as f:\n    for line in f:\n        print(line.rstrip())",
				},
				{
					Heading: "Writing files",
					Body:    "Open with mode \"w\" to create or truncate, \"a\" to append. Writing returns the number of characters written.",
					Code:    "with open(\"log.txt\", \"a\") as f:\n    f.write(\"done\\n\")",
				},
			},
			Exercises: []Exercise{
				{
					Prompt:      "Write a function safe_div(a, b) that returns a / b, or None when b is zero.",
					StarterCode: "def safe_div(a, b):\n    ...",
					Hint:        "Either test b first or catch ZeroDivisionError.",
					Solution:    "def safe_div(a, b):\n    try:\n        return a / b\n    except ZeroDivisionError:\n        return None",
				},
			},
			Quiz: []QuizQuestion{
				{
					Question: "Which statement guarantees a file is closed?",
					Options:  []string{"open", "with", "finally", "close happens automatically"},
					Answer:   1,
				},
				{
					Question: "What exception does int(\"abc\") raise?",
					Options:  []string{"TypeError", "KeyError", "ValueError", "SyntaxError"},
					Answer:   2,
				},
				{
					Question: "Which file mode appends to an existing file?",
					Options:  []string{"r", "w", "x", "a"},
					Answer:   3,
				},
			},
		},
	}
}
