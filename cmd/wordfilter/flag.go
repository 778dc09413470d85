package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

const (
	environmentVariableWordsFile          = "WORDS_FILE"
	environmentVariableOutputFile         = "OUTPUT_FILE"
	environmentVariableMinLength          = "MIN_LENGTH"
	environmentVariableMaxLength          = "MAX_LENGTH"
	environmentVariableDatabaseURL        = "DATABASE_URL"
	environmentVariableMongoURI           = "MONGODB_URI"
	environmentVariableFirestoreProjectID = "FIRESTORE_PROJECT_ID"
	environmentVariableListName           = "WORD_LIST_NAME"
	environmentVariableQuerySec           = "QUERY_SECONDS"
)

// mainFlags are the configuration options which can be easily configured at run startup for different environments.
type mainFlags struct {
	wordsFile          string
	outputFile         string
	minLength          int
	maxLength          int
	databaseURL        string
	mongoURI           string
	firestoreProjectID string
	listName           string
	querySec           int
}

const (
	defaultWordsFile  = "/usr/share/dict/american-english" // Ubuntu wamerican package
	defaultOutputFile = "src/words.json"
	defaultMinLength  = 3
	defaultMaxLength  = 5
	defaultListName   = "words"
	defaultQuerySec   = 5
)

// usage prints how to run the program to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariableWordsFile,
		environmentVariableOutputFile,
		environmentVariableMinLength,
		environmentVariableMaxLength,
		environmentVariableDatabaseURL,
		environmentVariableMongoURI,
		environmentVariableFirestoreProjectID,
		environmentVariableListName,
		environmentVariableQuerySec,
	}
	fmt.Fprintf(fs.Output(), "Saves the short words of a word list as a json object\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(programName string, osLookupEnvFunc func(string) (string, bool)) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ExitOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValue := func(key, defaultValue string) string {
		if envValue, ok := osLookupEnvFunc(key); ok {
			return envValue
		}
		return defaultValue
	}
	envValueInt := func(key string, defaultValue int) int {
		v1 := envValue(key, "")
		v2, err := strconv.Atoi(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	fs.StringVar(&m.wordsFile, "words-file", envValue(environmentVariableWordsFile, defaultWordsFile), "The word list to read, with a word on each line.")
	fs.StringVar(&m.outputFile, "output-file", envValue(environmentVariableOutputFile, defaultOutputFile), "The json file to overwrite with the filtered words.")
	fs.IntVar(&m.minLength, "min-length", envValueInt(environmentVariableMinLength, defaultMinLength), "The minimum length of words to keep.")
	fs.IntVar(&m.maxLength, "max-length", envValueInt(environmentVariableMaxLength, defaultMaxLength), "The maximum length of words to keep.")
	fs.StringVar(&m.databaseURL, "data-source", envValue(environmentVariableDatabaseURL, ""), "The data source to a PostgreSQL database (connection URI) to also save the words to.")
	fs.StringVar(&m.mongoURI, "mongo-uri", envValue(environmentVariableMongoURI, ""), "The connection URI to a mongodb database to also save the words to.")
	fs.StringVar(&m.firestoreProjectID, "firestore-project", envValue(environmentVariableFirestoreProjectID, ""), "The google cloud project id of a firestore database to also save the words to.")
	fs.StringVar(&m.listName, "list-name", envValue(environmentVariableListName, defaultListName), "The name of the word list in databases.")
	fs.IntVar(&m.querySec, "query-sec", envValueInt(environmentVariableQuerySec, defaultQuerySec), "The number of seconds each database operation is allowed to run.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool)) mainFlags {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programName, programArgs := osArgs[0], osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(programName, osLookupEnvFunc)
	fs.Parse(programArgs)
	return m
}
