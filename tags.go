package ctk

const (
	formCNT = "CNT "

	tagVersion    = "vrsn"
	tagParameters = "parm"
	tagElectrodes = "elec"
	tagInformation = "info"
	tagTriggers   = "trig"
	tagEpochIndex = "eidx"
	tagEpoch      = "epch"
)
