package flags

const Verbose = `verbose`
const VerboseShort = `v`
const Quiet = `quiet`
const QuietShort = `q`
const Plain = `plain`
const EnvFile = `env`
const PurgeWithoutConfirmation = `yes`
const TreeWithIndexMarks = `mark-index`
const TreeWatching = `watch`
