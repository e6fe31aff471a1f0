package settings

const CmdName = "cyclemark"
