package models

// ExportTemplate — фиксированный порядок строк листа экспорта.
// Порядок и состав согласованы с методикой испытаний, менять без
// согласования с лабораторией нельзя.
var ExportTemplate = []TemplateEntry{
	{"Power Supply", "Voltage Set", "0-60 V"},
	{"Power Supply", "Voltage Limit", "0-65 V"},
	{"Power Supply", "Current Set", "0-10 A"},
	{"Power Supply", "Current Limit", "0-12 A"},
	{"Power Supply", "OVP Threshold", "1-66 V"},
	{"Power Supply", "OCP Threshold", "0.1-13 A"},
	{"Load", "Load Mode", "CC/CV/CR/CP"},
	{"Load", "Load Resistance", "0.1-4000 Ohm"},
	{"Load", "Load Current Max", "0-30 A"},
	{"Load", "Load Power Max", "0-300 W"},
	{"Signal", "Frequency", "0.01-25000000 Hz"},
	{"Signal", "Amplitude", "0.001-10 Vpp"},
	{"Signal", "Offset", "-5-5 V"},
	{"Signal", "Duty Cycle", "1-99 %"},
	{"Signal", "Waveform", "sine/square/ramp/pulse"},
	{"Signal", "Phase", "0-360 deg"},
	{"Measurement", "Sample Rate", "1-1000000 S/s"},
	{"Measurement", "Averaging Window", "1-1024"},
	{"Measurement", "Trigger Level", "-10-10 V"},
	{"Measurement", "Trigger Slope", "rising/falling"},
	{"Measurement", "Gate Time", "0.001-10 s"},
	{"Measurement", "Input Range", "0.1/1/10/100 V"},
	{"Limits", "Temperature Max", "-40-125 C"},
	{"Limits", "Temperature Min", "-60-25 C"},
	{"Limits", "Pressure Max", "0-1000 kPa"},
	{"Limits", "Vibration Max", "0-50 g"},
	{"Limits", "Humidity Max", "0-98 %"},
	{"Timing", "Ramp Up Time", "0-3600 s"},
	{"Timing", "Hold Time", "0-86400 s"},
	{"Timing", "Ramp Down Time", "0-3600 s"},
	{"Timing", "Dwell Time", "0-3600 s"},
	{"Timing", "Cycle Count", "1-100000"},
	{"Timing", "Pause Between Cycles", "0-3600 s"},
	{"Calibration", "Gain Factor", "0.9-1.1"},
	{"Calibration", "Offset Correction", "-1-1"},
	{"Calibration", "Reference Voltage", "2.4-2.6 V"},
	{"Communication", "Poll Period", "50-60000 ms"},
	{"Communication", "Response Timeout", "100-30000 ms"},
}
