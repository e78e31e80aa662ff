/* Package collatz computes Collatz sequences.

Starting from a positive integer x, the next value is 3x+1 if x is odd and x/2
if x is even. The sequence ends at 1. Nobody has proved that every start
reaches 1, so Generate gives up after MaxSteps steps (see WithMaxSteps) and
reports ErrLimitExceeded. It does the same if 3x+1 no longer fits in an int64.

Example:

	seq, err := collatz.Generate(17)
	if err != nil {
		fmt.Println("ERROR:", err)
		return
	}
	fmt.Println(seq) // 17 52 26 13 40 20 10 5 16 8 4 2 1
*/
package collatz
