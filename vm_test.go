package main

import "testing"

// The six end-to-end scenarios: a numeric expression, a user-defined word, a
// DO/LOOP, two recursive definitions, and a VARIABLE. Each is a VM session
// fed as terminal input, asserting only on what reaches standard output.

func Test_scenario_arithmeticAndPrint(t *testing.T) {
	vmTest("3 4 + .").
		withInput("3 4 + .\n").
		expectOutput("7 ").
		run(t)
}

func Test_scenario_definedWordSquare(t *testing.T) {
	vmTest(": SQ DUP * ; 5 SQ .").
		withInput(": SQ DUP * ; 5 SQ .\n").
		expectOutput("25 ").
		run(t)
}

func Test_scenario_countdownDoLoop(t *testing.T) {
	vmTest("COUNTDOWN").
		withInput(": COUNTDOWN 0 DO I . LOOP ; 5 COUNTDOWN\n").
		expectOutput("0 1 2 3 4 ").
		run(t)
}

func Test_scenario_recursiveFactorial(t *testing.T) {
	vmTest("FACT").
		withInput(": FACT DUP 1 > IF DUP 1- FACT * ELSE DROP 1 THEN ; 10 FACT .\n").
		expectOutput("3628800 ").
		run(t)
}

func Test_scenario_variableBump(t *testing.T) {
	vmTest("VARIABLE/BUMP").
		withInput("VARIABLE V : BUMP 1 V +! ; BUMP BUMP BUMP V @ .\n").
		expectOutput("3 ").
		run(t)
}

func Test_scenario_recursiveGcd(t *testing.T) {
	vmTest("GCD").
		withInput(": GCD DUP IF TUCK MOD GCD ELSE DROP THEN ; 18 12 GCD .\n").
		expectOutput("6 ").
		run(t)
}
