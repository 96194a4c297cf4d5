package config

import "time"

// Fixed artifact locations, relative to the project working directory
const (
	ProjectConfigFile = "skyuxconfig.json"
	DotEnvFile        = ".env"

	E2EDir       = "e2e"
	SpecFileName = "stache-search.e2e-spec.ts"

	SearchJSONDir  = "src/stache/search"
	SearchJSONName = "search.json"
)

// Environment variables read for publishing
const (
	EnvSearchEndpoint = "searchEndpoint"
	EnvToken          = "token"
	EnvPrefix         = "STACHE"
)

// Defaults for plugin settings
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultAuditDBPath    = ".stache/audit.db"
	DefaultAuditListLimit = 20
	DefaultPublishTimeout = time.Duration(0) // no timeout
	SettingsFileName      = "stache-search.config"
)

// Command names accepted by the dispatcher
const (
	CommandAddSearchSpec    = "add-search-spec"
	CommandPublishSearch    = "publish-search"
	CommandRemoveSearchJSON = "remove-search-json"
	CommandRemoveSearchSpec = "remove-search-spec"
)

// User-facing messages
const (
	MsgAddSpecFailed       = "[ERROR]: Unable to add stache search template to e2e directory."
	MsgSearchJSONMissing   = "[ERROR]: Search json file does not exist!"
	MsgEndpointRequired    = "[ERROR]: An endpoint is required to publish stache search data!"
	MsgTokenRequired       = "[ERROR]: A token is required to publish stache search data!"
	MsgReadSearchFailedFmt = "[ERROR]: Unable to read search file at %s! %s"
	MsgPostFailedFmt       = "[ERROR]: Unable to post search data! %s"
	MsgPostedFmt           = "%d: Search data successfully posted!"
	MsgRemoveJSONFailed    = "[ERROR]: Unable to remove stache search directory."
	MsgRemoveSpecFailed    = "[ERROR]: Unable to remove stache search template from e2e directory."
	MsgUnknownCommandFmt   = "stache-search: Unknown command %s"
	MsgLegacySearchFlag    = "appSettings.search is ignored; set appSettings.stache.searchConfig.allowSiteToBeSearched instead"
)
