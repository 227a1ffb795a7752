package thresholds

// schemaSource declares the accepted shape of a thresholds file.
// Every field is a percentage; omitted fields take the built-in default.
const schemaSource = `
#Threshold: int & >=0 & <=100

#Thresholds: {
	success:       *0 | #Threshold
	out_of_memory: *80 | #Threshold
	cpu_overload:  *75 | #Threshold
	io_overload:   *60 | #Threshold
	rogue_client:  *50 | #Threshold
	unknown:       *0 | #Threshold
}
`

// schemaPath is the definition data files are unified with.
const schemaPath = "#Thresholds"
